package service

import (
	"fmt"

	"d4-translate/internal/refdata"
)

// NoMatchError — ни один кандидат не дотянул до порога.
// BestScore == -1, если словарь пуст и сравнивать было не с чем.
type NoMatchError struct {
	Phrase    string
	BestID    string
	BestScore int
}

func (e *NoMatchError) Error() string {
	if e.BestID == "" {
		return fmt.Sprintf("no match for %q (no candidates)", e.Phrase)
	}
	return fmt.Sprintf("no match for %q (best %s, score %d)", e.Phrase, e.BestID, e.BestScore)
}

// Match — принятое совпадение. Score точного прохода всегда 100.
type Match struct {
	ID    string
	Score int
	Fuzzy bool
}

// Matcher резолвит нормализованную фразу в канонический ID.
// Два прохода: точный по нормализованным описаниям, затем fuzzy
// по token-sort близости. Порог включительный: счёт ровно на пороге
// принимается.
type Matcher struct {
	ids       []string
	normDescs []string
	norm      *Normalizer
	threshold int

	// подменяется в тестах
	scorer func(a, b string) int
}

func NewMatcher(ref *refdata.ReferenceMap, norm *Normalizer, threshold int) *Matcher {
	ids := ref.IDs()
	normDescs := make([]string, len(ids))
	for i, id := range ids {
		normDescs[i] = norm.Normalize(ref.Description(id))
	}
	return &Matcher{
		ids:       ids,
		normDescs: normDescs,
		norm:      norm,
		threshold: threshold,
		scorer:    TokenSortRatio,
	}
}

func (m *Matcher) Match(phrase string) (Match, error) {
	q := m.norm.Normalize(phrase)

	// 1) Точный проход — обход в ID-порядке, первая победа решает
	for i, nd := range m.normDescs {
		if nd == q {
			return Match{ID: m.ids[i], Score: 100}, nil
		}
	}

	// 2) Fuzzy: лучший счёт, при равенстве остаётся первый увиденный
	best, bestIdx := -1, -1
	for i, nd := range m.normDescs {
		if s := m.scorer(q, nd); s > best {
			best, bestIdx = s, i
		}
	}

	if bestIdx >= 0 && best >= m.threshold {
		return Match{ID: m.ids[bestIdx], Score: best, Fuzzy: true}, nil
	}

	e := &NoMatchError{Phrase: phrase, BestScore: best}
	if bestIdx >= 0 {
		e.BestID = m.ids[bestIdx]
	}
	return Match{}, e
}
