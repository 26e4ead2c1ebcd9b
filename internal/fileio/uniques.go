package fileio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ReadUniqueNames читает список имён уникальных предметов.
// .json — массив строк; всё остальное — текст «одно имя на строку».
// Текстовые дампы гайдов иногда приходят не в UTF-8, поэтому кодировку
// определяем автоматически: сначала детект, потом перекодирование.
func ReadUniqueNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		var names []string
		if err := json.NewDecoder(f).Decode(&names); err != nil {
			return nil, fmt.Errorf("uniques list: %w", err)
		}
		return cleanNames(names), nil
	}
	return readNameLines(f)
}

func readNameLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)

	// Подглядываем начало файла для детекта кодировки
	peek, _ := br.Peek(2048)
	cs := "utf-8"
	if len(peek) > 0 {
		if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
			cs = strings.ToLower(det.Charset)
		}
	}

	var dec io.Reader = br
	switch cs {
	case "windows-1251", "cp1251":
		dec = transform.NewReader(br, charmap.Windows1251.NewDecoder())
	case "windows-1252", "cp1252", "iso-8859-1":
		dec = transform.NewReader(br, charmap.Windows1252.NewDecoder())
	default:
		// считаем UTF-8
	}

	var names []string
	sc := bufio.NewScanner(dec)
	for sc.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\uFEFF"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("uniques list: %w", err)
	}
	return names, nil
}

func cleanNames(names []string) []string {
	out := names[:0]
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}
