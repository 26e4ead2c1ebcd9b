package fileio

import (
	"fmt"
	"strconv"

	excelize "github.com/xuri/excelize/v2"

	"d4-translate/internal/translate/model"
)

// RunReport — итог пакетного прогона для xlsx-отчёта.
type RunReport struct {
	Outcomes []BuildOutcome
	Warnings []BuildWarning
	Failures []BuildFailure
}

type BuildOutcome struct {
	Build   string
	Affixes int
	Aspects int
	Status  string // ok | failed
}

type BuildWarning struct {
	Build string
	model.Warning
}

type BuildFailure struct {
	Build string
	Err   string
}

// WriteReport пишет книгу с тремя листами: итоги по билдам,
// низкоуверенные совпадения, ошибки.
func WriteReport(path string, rep RunReport) error {
	f := excelize.NewFile()
	defer f.Close()

	const builds = "Builds"
	f.SetSheetName(f.GetSheetName(0), builds)
	if err := writeRows(f, builds, append(
		[][]any{{"Build", "Affixes", "Aspects", "Status"}},
		mapRows(rep.Outcomes, func(o BuildOutcome) []any {
			return []any{o.Build, o.Affixes, o.Aspects, o.Status}
		})...,
	)); err != nil {
		return err
	}

	const lowConf = "Low confidence"
	if _, err := f.NewSheet(lowConf); err != nil {
		return err
	}
	if err := writeRows(f, lowConf, append(
		[][]any{{"Build", "Slot", "Phrase", "Matched", "Score"}},
		mapRows(rep.Warnings, func(w BuildWarning) []any {
			return []any{w.Build, w.Slot, w.Phrase, w.Description, w.Score}
		})...,
	)); err != nil {
		return err
	}

	const failures = "Failures"
	if _, err := f.NewSheet(failures); err != nil {
		return err
	}
	if err := writeRows(f, failures, append(
		[][]any{{"Build", "Error"}},
		mapRows(rep.Failures, func(fl BuildFailure) []any {
			return []any{fl.Build, fl.Err}
		})...,
	)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report %s: %w", path, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if err := f.SetSheetRow(sheet, "A"+strconv.Itoa(i+1), &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func mapRows[T any](in []T, fn func(T) []any) [][]any {
	out := make([][]any, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
