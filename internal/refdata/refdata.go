package refdata

import (
	"fmt"
	"sort"
)

// ReferenceMap — неизменяемый словарь {канонический ID → описание}.
// ID отсортированы один раз при загрузке: обход словаря всегда
// детерминированный, ничьи при матчинге решаются стабильно.
type ReferenceMap struct {
	desc map[string]string
	ids  []string
}

func NewReferenceMap(m map[string]string) *ReferenceMap {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	desc := make(map[string]string, len(m))
	for id, d := range m {
		desc[id] = d
	}
	return &ReferenceMap{desc: desc, ids: ids}
}

// IDs — канонический (отсортированный) порядок обхода. Слайс не копируется,
// вызывающий не должен его менять.
func (r *ReferenceMap) IDs() []string { return r.ids }

func (r *ReferenceMap) Description(id string) string { return r.desc[id] }

func (r *ReferenceMap) Len() int { return len(r.ids) }

// Store — всё, что движку нужно знать до первого перевода.
// Загружается один раз при старте и дальше только читается.
type Store struct {
	Affixes *ReferenceMap
	Aspects *ReferenceMap
	Uniques []string
}

// Loader отвязывает Store от формата файлов (см. internal/fileio).
type Loader interface {
	ReadReferenceMap(path string) (map[string]string, error)
	ReadUniqueNames(path string) ([]string, error)
}

// Load собирает Store. Любая ошибка здесь фатальна для запуска:
// без словарей движку нечего переводить.
func Load(l Loader, affixPath, aspectPath, uniquesPath string) (*Store, error) {
	affixes, err := l.ReadReferenceMap(affixPath)
	if err != nil {
		return nil, fmt.Errorf("affix map %s: %w", affixPath, err)
	}
	aspects, err := l.ReadReferenceMap(aspectPath)
	if err != nil {
		return nil, fmt.Errorf("aspect map %s: %w", aspectPath, err)
	}
	uniques, err := l.ReadUniqueNames(uniquesPath)
	if err != nil {
		return nil, fmt.Errorf("uniques list %s: %w", uniquesPath, err)
	}
	return &Store{
		Affixes: NewReferenceMap(affixes),
		Aspects: NewReferenceMap(aspects),
		Uniques: uniques,
	}, nil
}
