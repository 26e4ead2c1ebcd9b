package fileio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	excelize "github.com/xuri/excelize/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"d4-translate/internal/translate/model"
)

func TestDecodeBuildRows(t *testing.T) {
	t.Run("aspects as array", func(t *testing.T) {
		rows, err := DecodeBuildRows(strings.NewReader(
			`[["Gear Slot", ["Aspects"], "Stat Priority"],
			  ["Ring", ["Aspect of Might", "Edgemaster's Aspect"], "1. Maximum Life"]]`))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Ring", rows[1].Slot)
		assert.Equal(t, []string{"Aspect of Might", "Edgemaster's Aspect"}, rows[1].Aspects)
		assert.Equal(t, "1. Maximum Life", rows[1].StatBlock)
	})

	t.Run("aspects as legacy single string", func(t *testing.T) {
		rows, err := DecodeBuildRows(strings.NewReader(
			`[["Slot", "Aspects", "Stats"], ["Helm", "Aspect of Might", "1. Armor"]]`))
		require.NoError(t, err)
		assert.Equal(t, []string{"Aspect of Might"}, rows[1].Aspects)
	})

	t.Run("short row tolerated", func(t *testing.T) {
		rows, err := DecodeBuildRows(strings.NewReader(`[["Slot"]]`))
		require.NoError(t, err)
		assert.Equal(t, "Slot", rows[0].Slot)
		assert.Empty(t, rows[0].Aspects)
		assert.Empty(t, rows[0].StatBlock)
	})

	t.Run("not an array", func(t *testing.T) {
		_, err := DecodeBuildRows(strings.NewReader(`{"rows": []}`))
		require.Error(t, err)
	})
}

func TestReadReferenceMap(t *testing.T) {
	dir := t.TempDir()

	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}

	t.Run("compiled object form", func(t *testing.T) {
		path := write("map.json", `{"aff1": "Maximum Life", "aff2": "Armor"}`)
		m, err := ReadReferenceMap(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"aff1": "Maximum Life", "aff2": "Armor"}, m)
	})

	t.Run("upstream array form", func(t *testing.T) {
		path := write("list.json",
			`[{"IdName":"aff1","Description":"Maximum Life"},{"IdName":"aff2","Description":"Armor"}]`)
		m, err := ReadReferenceMap(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"aff1": "Maximum Life", "aff2": "Armor"}, m)
	})

	t.Run("empty file", func(t *testing.T) {
		path := write("empty.json", "  \n")
		_, err := ReadReferenceMap(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadReferenceMap(filepath.Join(dir, "nope.json"))
		require.Error(t, err)
	})
}

func TestReadUniqueNames(t *testing.T) {
	dir := t.TempDir()

	t.Run("json array", func(t *testing.T) {
		path := filepath.Join(dir, "uniques.json")
		require.NoError(t, os.WriteFile(path, []byte(`["Harlequin Crest", " Doombringer "]`), 0o644))
		names, err := ReadUniqueNames(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Harlequin Crest", "Doombringer"}, names)
	})

	t.Run("plain text with comments", func(t *testing.T) {
		path := filepath.Join(dir, "uniques.txt")
		require.NoError(t, os.WriteFile(path,
			[]byte("# uniques\nHarlequin Crest\n\nDoombringer\n"), 0o644))
		names, err := ReadUniqueNames(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Harlequin Crest", "Doombringer"}, names)
	})
}

func TestWriteBuildAndResetDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, ResetDir(dir))

	b := model.TranslatedBuild{
		Name:    "ring-build",
		Affixes: []model.Entry{{ID: "aff1", Slot: "Ring"}},
		Aspects: []model.Entry{},
	}
	require.NoError(t, WriteBuild(dir, b))

	data, err := os.ReadFile(filepath.Join(dir, "ring-build.json"))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"Name":"ring-build","ItemAffixes":[{"Id":"aff1","Type":"Ring"}],"ItemAspects":[]}`,
		string(data))

	// повторный ResetDir убирает прошлый прогон
	require.NoError(t, ResetDir(dir))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	rep := RunReport{
		Outcomes: []BuildOutcome{{Build: "alpha", Affixes: 3, Aspects: 1, Status: "ok"}},
		Warnings: []BuildWarning{{
			Build: "alpha",
			Warning: model.Warning{
				Slot: "Ring", Phrase: "Crit Chance",
				MatchedID: "aff2", Description: "Critical Strike Chance", Score: 76,
			},
		}},
		Failures: []BuildFailure{{Build: "broken", Err: "no match"}},
	}
	require.NoError(t, WriteReport(path, rep))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Builds", "A2")
	require.NoError(t, err)
	assert.Equal(t, "alpha", got)

	got, err = f.GetCellValue("Low confidence", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Critical Strike Chance", got)

	got, err = f.GetCellValue("Failures", "B2")
	require.NoError(t, err)
	assert.Equal(t, "no match", got)
}

// Ошибка записи строки не должна проглатываться.
func TestWriteRowsMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	err := writeRows(f, "Nope", [][]any{{"x"}})
	assert.Error(t, err)
}
