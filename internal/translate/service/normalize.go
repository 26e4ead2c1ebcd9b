package service

import (
	"regexp"
	"strings"
)

// Скобочные вставки убираем ДО чистки символов: внутри часто цифры/проценты,
// после чистки от скобок остался бы осиротевший текст.
var reParens = regexp.MustCompile(`\([^)]*\)`)

// Хвост описания аспекта после двоеточия — человекочитаемая расшифровка,
// в референсном словаре её нет.
var reColonTail = regexp.MustCompile(`:.*$`)

// Оставляем только буквы и пробелы (цифры, пунктуация, % — в мусор)
var reNonLetter = regexp.MustCompile(`[^\p{L}\s]+`)

// "damage to close enemies" → "close damage" (идиома описаний предметов)
var reDamageTo = regexp.MustCompile(`damage to ([\p{L}\s]+?) enemies`)

var reAffixFillers = regexp.MustCompile(`\b(?:the|passive)\b`)
var reAspectFillers = regexp.MustCompile(`\baspect\b`)
var reMaxLife = regexp.MustCompile(`\bmaximum life\b`)

// Normalizer — детерминированный и идемпотентный конвейер чистки фразы.
// Один и тот же код обслуживает оба словаря, различия — только в наборе правил.
type Normalizer struct {
	clause       *regexp.Regexp // что считать вырезаемой вставкой (скобки / хвост за ':')
	fillers      *regexp.Regexp // слова-паразиты для этого словаря
	uniques      *regexp.Regexp // имена уникальных предметов (может быть nil)
	rewriteStats bool           // фразовые замены статов (damage to X enemies, maximum life)
}

// NewAffixNormalizer — вариант для аффиксов (статов).
func NewAffixNormalizer(uniques []string) *Normalizer {
	return &Normalizer{
		clause:       reParens,
		fillers:      reAffixFillers,
		uniques:      compileUniques(uniques, reAffixFillers),
		rewriteStats: true,
	}
}

// NewAspectNormalizer — вариант для аспектов: режем хвост после двоеточия
// и выбрасываем само слово "aspect".
func NewAspectNormalizer(uniques []string) *Normalizer {
	return &Normalizer{
		clause:  reColonTail,
		fillers: reAspectFillers,
		uniques: compileUniques(uniques, reAspectFillers),
	}
}

// Normalize — главный конвейер. normalize(normalize(x)) == normalize(x).
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	// 1) Регистр и края
	out := strings.ToLower(strings.TrimSpace(s))

	// 2) Вставки — до чистки символов (см. reParens)
	out = n.clause.ReplaceAllString(out, " ")

	// 3) Только буквы и пробелы. Пробелы схлопываем сразу: вырезание вставки
	// оставляет двойной пробел посреди фразы, а пословные правила ниже
	// рассчитаны на одиночные.
	out = collapseSpaces(reNonLetter.ReplaceAllString(out, ""))

	if n.rewriteStats {
		// 4) "damage to <X> enemies" → "<X> damage"
		out = reDamageTo.ReplaceAllString(out, "${1} damage")
	}

	// 5) Слова-паразиты
	out = collapseSpaces(n.fillers.ReplaceAllString(out, " "))

	// 6) Имена уникальных предметов не должны портить скоринг
	if n.uniques != nil {
		out = collapseSpaces(n.uniques.ReplaceAllString(out, " "))
	}

	if n.rewriteStats {
		// 7) "maximum life" и "life" — один и тот же стат
		out = reMaxLife.ReplaceAllString(out, "life")
	}

	return collapseSpaces(out)
}

// compileUniques — один regexp на весь список, имена чистим той же логикой,
// что и фразы, включая слова-паразиты: к моменту шага 6 из фразы они уже
// выброшены, и "The Grandfather" во фразе выглядит как "grandfather".
func compileUniques(names []string, fillers *regexp.Regexp) *regexp.Regexp {
	alts := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		name = reNonLetter.ReplaceAllString(name, "")
		name = fillers.ReplaceAllString(name, " ")
		name = collapseSpaces(name)
		if name == "" {
			continue
		}
		alts = append(alts, regexp.QuoteMeta(name))
	}
	if len(alts) == 0 {
		return nil
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(alts, `|`) + `)\b`)
}

// Схлопывание пробелов
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
