package service

import (
	"regexp"
	"strings"
)

// Нумерованная строка приоритета: ведущие цифры/слэши/точки, затем "." или ":",
// затем полезная фраза. Хвостовые пометки "(as needed)" / "(if necessary)"
// отбрасываем. Строки без номера — продолжения, уже склеенные выше по конвейеру.
var reNumbered = regexp.MustCompile(`(?i)^[\d/.\s]*[.:]\s*(.*?)\s*(?:\((?:as\s+needed|if\s+necessary)\))?\s*$`)

// Фразы, которым заведомо нет соответствия в словаре. Сравниваем
// по нормализованной форме.
var skipPhrases = []string{
	"any",           // заглушка в таблицах гайдов
	"sockets",       // не стат
	"see notes",     // отсылка к тексту гайда
	"unique power",  // механика уникального предмета, словарь её не знает
	"weapon damage", // слишком общая фраза, канонического аффикса нет
}

// Синонимы "всех резистов сразу"
var resistSynonyms = []string{"any resistance", "resists", "single resistance"}

// Развёрнутая форма: суффиксация ниже превратит её в пять атомарных фраз
const allResists = "fire/cold/lightning/poison/shadow resistance"

var resistElements = []string{"fire", "cold", "lightning", "poison", "shadow"}

// Parser разбирает блок приоритетов статов на атомарные фразы.
type Parser struct {
	norm     *Normalizer
	skip     map[string]struct{}
	synonyms map[string]struct{}
}

func NewParser(norm *Normalizer) *Parser {
	p := &Parser{
		norm:     norm,
		skip:     make(map[string]struct{}, len(skipPhrases)),
		synonyms: make(map[string]struct{}, len(resistSynonyms)),
	}
	for _, s := range skipPhrases {
		p.skip[norm.Normalize(s)] = struct{}{}
	}
	for _, s := range resistSynonyms {
		p.synonyms[norm.Normalize(s)] = struct{}{}
	}
	return p
}

// Parse возвращает атомарные фразы в порядке появления; дубликаты внутри
// одного блока схлопываются по нормализованной форме (первое вхождение
// задаёт позицию).
func (p *Parser) Parse(block string) []string {
	set := newOrderedSet()

	for _, line := range strings.Split(block, "\n") {
		m := reNumbered.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		payload := strings.TrimSpace(m[1])
		if payload == "" {
			continue
		}

		key := p.norm.Normalize(payload)
		if key == "" {
			continue
		}
		if _, ok := p.skip[key]; ok {
			continue
		}
		// "any resistance" и компания → все пять резистов
		if _, ok := p.synonyms[key]; ok {
			payload = allResists
		}

		for _, atom := range p.split(payload) {
			if k := p.norm.Normalize(atom); k != "" {
				set.add(k, atom)
			}
		}
	}
	return set.values()
}

// split — разбор составных фраз. Агрегат резистов получает суффикс
// "resistance" на каждую часть; обычные составные фразы просто режутся
// по "/" (или "," если слэша нет).
func (p *Parser) split(payload string) []string {
	sep := "/"
	if !strings.Contains(payload, sep) {
		sep = ","
	}
	aggregate := isResistAggregate(payload)

	parts := strings.Split(payload, sep)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if aggregate && !strings.HasSuffix(strings.ToLower(part), "resistance") {
			part += " resistance"
		}
		out = append(out, part)
	}
	return out
}

// Агрегат: либо явный суффикс "resistance", либо хотя бы 3 из 5 стихий.
func isResistAggregate(payload string) bool {
	low := strings.ToLower(payload)
	if strings.HasSuffix(strings.TrimSpace(low), "resistance") {
		return true
	}
	n := 0
	for _, el := range resistElements {
		if strings.Contains(low, el) {
			n++
		}
	}
	return n >= 3
}

// orderedSet — упорядоченное множество, первое вхождение выигрывает.
type orderedSet struct {
	seen map[string]struct{}
	vals []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(key, val string) {
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.vals = append(s.vals, val)
}

func (s *orderedSet) values() []string { return s.vals }
