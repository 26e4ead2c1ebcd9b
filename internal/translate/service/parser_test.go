package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestParser() *Parser {
	return NewParser(NewAffixNormalizer(nil))
}

func TestParseNumberedEntries(t *testing.T) {
	p := newTestParser()

	t.Run("basic list", func(t *testing.T) {
		got := p.Parse("1. Maximum Life\n2. Critical Strike Chance")
		assert.Equal(t, []string{"Maximum Life", "Critical Strike Chance"}, got)
	})

	t.Run("colon separator and compound numbering", func(t *testing.T) {
		got := p.Parse("1: Intelligence\n2/3. Willpower")
		assert.Equal(t, []string{"Intelligence", "Willpower"}, got)
	})

	t.Run("trailing annotations discarded", func(t *testing.T) {
		got := p.Parse("1. Intelligence (as needed)\n2. Armor (if necessary)")
		assert.Equal(t, []string{"Intelligence", "Armor"}, got)
	})

	t.Run("non-numbered lines dropped", func(t *testing.T) {
		got := p.Parse("Stat priority notes\n1. Maximum Life\nsee the table above")
		assert.Equal(t, []string{"Maximum Life"}, got)
	})

	t.Run("skip list", func(t *testing.T) {
		got := p.Parse("1. Weapon Damage\n2. Maximum Life")
		assert.Equal(t, []string{"Maximum Life"}, got)
	})
}

func TestParseMultiValue(t *testing.T) {
	p := newTestParser()

	t.Run("slash split keeps order", func(t *testing.T) {
		got := p.Parse("1. Strength/Dexterity")
		assert.Equal(t, []string{"Strength", "Dexterity"}, got)
	})

	t.Run("comma split without resistance context", func(t *testing.T) {
		got := p.Parse("1. Strength, Dexterity")
		assert.Equal(t, []string{"Strength", "Dexterity"}, got)
	})
}

func TestParseResistanceAggregates(t *testing.T) {
	p := newTestParser()

	allFive := []string{
		"fire resistance",
		"cold resistance",
		"lightning resistance",
		"poison resistance",
		"shadow resistance",
	}

	t.Run("synonyms expand to all five", func(t *testing.T) {
		for _, in := range []string{"1. Any Resistance", "1. Resists", "1. Single Resistance"} {
			got := p.Parse(in)
			assert.Equal(t, allFive, got, "input %q", in)
			for _, atom := range got {
				assert.True(t, len(atom) > len("resistance"))
			}
		}
	})

	t.Run("explicit aggregate gets suffixed", func(t *testing.T) {
		got := p.Parse("1. Fire/Cold/Poison Resistance")
		assert.Equal(t, []string{"Fire resistance", "Cold resistance", "Poison Resistance"}, got)
	})

	t.Run("three elements imply aggregate", func(t *testing.T) {
		got := p.Parse("1. Fire, Cold, Shadow")
		assert.Equal(t, []string{"Fire resistance", "Cold resistance", "Shadow resistance"}, got)
	})

	t.Run("two elements are a plain split", func(t *testing.T) {
		got := p.Parse("1. Fire/Cold")
		assert.Equal(t, []string{"Fire", "Cold"}, got)
	})
}

func TestParseDeduplication(t *testing.T) {
	p := newTestParser()

	t.Run("exact duplicate collapses to first position", func(t *testing.T) {
		got := p.Parse("1. Maximum Life\n2. Armor\n3. Maximum Life")
		assert.Equal(t, []string{"Maximum Life", "Armor"}, got)
	})

	t.Run("duplicates by normalized form", func(t *testing.T) {
		// "Maximum Life" и "Life" — один стат после нормализации
		got := p.Parse("1. Maximum Life\n2. Life")
		assert.Equal(t, []string{"Maximum Life"}, got)
	})
}
