package fileio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ReadReferenceMap читает словарь {IdName → Description}.
// Поддерживаются обе формы: скомпилированный объект и исходный массив
// D4Companion ([{"IdName":..,"Description":..}]).
func ReadReferenceMap(path string) (map[string]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeReferenceMap(b)
}

func decodeReferenceMap(b []byte) (map[string]string, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return nil, errors.New("reference map: empty file")
	}

	if trimmed[0] == '[' {
		var items []struct {
			IdName      string `json:"IdName"`
			Description string `json:"Description"`
		}
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("reference map: %w", err)
		}
		m := make(map[string]string, len(items))
		for _, it := range items {
			if it.IdName == "" {
				continue
			}
			m[it.IdName] = it.Description
		}
		return m, nil
	}

	var m map[string]string
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return nil, fmt.Errorf("reference map: %w", err)
	}
	return m, nil
}

// Disk — загрузчик справочников с диска (реализация refdata.Loader).
type Disk struct{}

func (Disk) ReadReferenceMap(path string) (map[string]string, error) {
	return ReadReferenceMap(path)
}

func (Disk) ReadUniqueNames(path string) ([]string, error) {
	return ReadUniqueNames(path)
}
