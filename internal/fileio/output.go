package fileio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"d4-translate/internal/translate/model"
)

// ResetDir вычищает и пересоздаёт каталог результатов: каждый прогон
// полностью переписывает выход.
func ResetDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("reset %s: %w", dir, err)
	}
	return os.MkdirAll(dir, 0o755)
}

// WriteBuild пишет переведённый билд в <dir>/<Name>.json.
func WriteBuild(dir string, b model.TranslatedBuild) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	path := filepath.Join(dir, b.Name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
