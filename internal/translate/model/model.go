package model

// BuildRow — одна строка таблицы экипировки из гайда.
// Первая строка файла билда — шапка, переводчик её пропускает.
type BuildRow struct {
	Slot      string   // слот экипировки (Helm, Ring, ...)
	Aspects   []string // сырые фразы аспектов
	StatBlock string   // нумерованный список статов одним блоком
}

type Options struct {
	AffixThreshold  int // порог принятия для аффиксов (0..100)
	AspectThreshold int // порог принятия для аспектов (0..100)
	WarnBelow       int // принятые совпадения ниже — в лог и отчёт
}

// Defaults — референсные пороги движка.
func Defaults() Options {
	return Options{
		AffixThreshold:  60,
		AspectThreshold: 55,
		WarnBelow:       80,
	}
}

// Entry — атомарная единица результата: канонический ID + слот.
type Entry struct {
	ID   string `json:"Id"`
	Slot string `json:"Type"`
}

// TranslatedBuild — результат перевода одного билда.
// Порядок записей повторяет порядок строк входной таблицы.
type TranslatedBuild struct {
	Name    string  `json:"Name"`
	Affixes []Entry `json:"ItemAffixes"`
	Aspects []Entry `json:"ItemAspects"`
}

// Warning — принятое, но низкоуверенное совпадение.
type Warning struct {
	Slot        string `json:"slot"`
	Phrase      string `json:"phrase"`
	MatchedID   string `json:"matchedId"`
	Description string `json:"description"`
	Score       int    `json:"score"`
}
