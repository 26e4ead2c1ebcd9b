package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"d4-translate/internal/refdata"
	"d4-translate/internal/translate/model"
)

// Translator переводит билд целиком: строки таблицы → канонические ID.
// Состояние после конструктора только читается, один Translator можно
// безопасно использовать из многих горутин.
type Translator struct {
	refs      *refdata.Store
	parser    *Parser
	affixes   *Matcher
	aspects   *Matcher
	warnBelow int
	log       zerolog.Logger
}

// Result — переведённый билд плюс принятые низкоуверенные совпадения
// (для отчёта по прогону).
type Result struct {
	Build    model.TranslatedBuild
	Warnings []model.Warning
}

func NewTranslator(refs *refdata.Store, opt model.Options, log zerolog.Logger) *Translator {
	affixNorm := NewAffixNormalizer(refs.Uniques)
	aspectNorm := NewAspectNormalizer(refs.Uniques)
	return &Translator{
		refs:      refs,
		parser:    NewParser(affixNorm),
		affixes:   NewMatcher(refs.Affixes, affixNorm, opt.AffixThreshold),
		aspects:   NewMatcher(refs.Aspects, aspectNorm, opt.AspectThreshold),
		warnBelow: opt.WarnBelow,
		log:       log,
	}
}

// Translate — перевод одного билда. Первая строка таблицы — шапка,
// пропускается. Порядок записей в результате повторяет порядок строк;
// внутри строки дубликаты статов схлопнуты парсером.
// Первая нерезолвящаяся фраза роняет весь билд — пропускать или нет,
// решает вызывающий (см. runner).
func (t *Translator) Translate(name string, rows []model.BuildRow) (Result, error) {
	res := Result{Build: model.TranslatedBuild{
		Name:    name,
		Affixes: []model.Entry{},
		Aspects: []model.Entry{},
	}}

	if len(rows) > 0 {
		rows = rows[1:] // шапка
	}

	for _, row := range rows {
		// Аспекты: каждый упомянутый — в выход, без дедупликации
		for _, phrase := range row.Aspects {
			m, err := t.aspects.Match(phrase)
			if err != nil {
				return Result{}, fmt.Errorf("build %s, slot %s: aspect: %w", name, row.Slot, err)
			}
			t.noteLowConfidence(&res, row.Slot, phrase, m, t.refs.Aspects)
			res.Build.Aspects = append(res.Build.Aspects, model.Entry{ID: m.ID, Slot: row.Slot})
		}

		// Статы: блок → атомарные фразы → ID
		for _, phrase := range t.parser.Parse(row.StatBlock) {
			m, err := t.affixes.Match(phrase)
			if err != nil {
				return Result{}, fmt.Errorf("build %s, slot %s: stat: %w", name, row.Slot, err)
			}
			t.noteLowConfidence(&res, row.Slot, phrase, m, t.refs.Affixes)
			res.Build.Affixes = append(res.Build.Affixes, model.Entry{ID: m.ID, Slot: row.Slot})
		}
	}
	return res, nil
}

// Принято, но ниже планки уверенности — в лог и в отчёт.
func (t *Translator) noteLowConfidence(res *Result, slot, phrase string, m Match, ref *refdata.ReferenceMap) {
	if !m.Fuzzy || m.Score >= t.warnBelow {
		return
	}
	desc := ref.Description(m.ID)
	t.log.Warn().
		Str("phrase", phrase).
		Str("matched", desc).
		Int("score", m.Score).
		Msg("low-confidence match")
	res.Warnings = append(res.Warnings, model.Warning{
		Slot:        slot,
		Phrase:      phrase,
		MatchedID:   m.ID,
		Description: desc,
		Score:       m.Score,
	})
}
