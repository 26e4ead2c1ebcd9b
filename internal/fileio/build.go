package fileio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"d4-translate/internal/translate/model"
)

// Строка файла билда на проводе: [слот, аспекты, блок статов].
// Ячейка аспектов исторически бывает и строкой, и массивом строк —
// принимаем обе формы.
type wireRow [3]json.RawMessage

// ReadBuildFile читает файл билда: JSON-массив строк таблицы.
// Форму строк движок дальше не перепроверяет — за неё отвечает скрейпер.
func ReadBuildFile(path string) ([]model.BuildRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeBuildRows(f)
}

// DecodeBuildRows читает строки билда из потока (файл или тело запроса).
func DecodeBuildRows(r io.Reader) ([]model.BuildRow, error) {
	var raw []wireRow
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("build file: %w", err)
	}

	rows := make([]model.BuildRow, 0, len(raw))
	for i, rec := range raw {
		var row model.BuildRow
		if err := json.Unmarshal(rec[0], &row.Slot); err != nil {
			return nil, fmt.Errorf("build file: row %d slot: %w", i, err)
		}
		if len(rec[1]) > 0 {
			if err := decodeAspects(rec[1], &row.Aspects); err != nil {
				return nil, fmt.Errorf("build file: row %d aspects: %w", i, err)
			}
		}
		if len(rec[2]) > 0 {
			if err := json.Unmarshal(rec[2], &row.StatBlock); err != nil {
				return nil, fmt.Errorf("build file: row %d stats: %w", i, err)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func decodeAspects(raw json.RawMessage, out *[]string) error {
	if err := json.Unmarshal(raw, out); err == nil {
		return nil
	}
	var one string
	if err := json.Unmarshal(raw, &one); err != nil {
		return err
	}
	if one != "" {
		*out = []string{one}
	}
	return nil
}
