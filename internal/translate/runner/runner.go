package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"d4-translate/internal/fileio"
	"d4-translate/internal/translate/service"
)

// Runner — пакетный прогон: каталог файлов билдов → каталог переводов.
// Билды независимы, переводим параллельно; общее состояние — только
// неизменяемые словари внутри Translator.
type Runner struct {
	tr      *service.Translator
	workers int
	// Strict: первая ошибка роняет весь прогон. Иначе — лог и дальше,
	// по образцу скрейпера (упал один билд — остальные не виноваты).
	strict bool
	log    zerolog.Logger

	mu  sync.Mutex
	rep fileio.RunReport
}

func New(tr *service.Translator, workers int, strict bool, log zerolog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{tr: tr, workers: workers, strict: strict, log: log}
}

// Run переводит все *.json из buildsDir в outDir. Выходной каталог
// вычищается и заполняется заново. Возвращает отчёт по прогону.
func (r *Runner) Run(ctx context.Context, buildsDir, outDir string) (fileio.RunReport, error) {
	names, err := listBuilds(buildsDir)
	if err != nil {
		return fileio.RunReport{}, err
	}
	if err := fileio.ResetDir(outDir); err != nil {
		return fileio.RunReport{}, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, name := range names {
		name := name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := r.translateOne(buildsDir, outDir, name); err != nil {
				if r.strict {
					return err
				}
				r.log.Error().Err(err).Str("build", name).Msg("build failed, continuing")
				r.addFailure(name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileio.RunReport{}, err
	}

	// у отчёта детерминированный порядок, каким бы ни был порядок воркеров
	r.sortReport()
	r.log.Info().
		Int("builds", len(names)).
		Int("failed", len(r.rep.Failures)).
		Int("low_confidence", len(r.rep.Warnings)).
		Msg("run done")
	return r.rep, nil
}

func (r *Runner) translateOne(buildsDir, outDir, name string) error {
	rows, err := fileio.ReadBuildFile(filepath.Join(buildsDir, name+".json"))
	if err != nil {
		return err
	}
	res, err := r.tr.Translate(name, rows)
	if err != nil {
		return err
	}
	if err := fileio.WriteBuild(outDir, res.Build); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rep.Outcomes = append(r.rep.Outcomes, fileio.BuildOutcome{
		Build:   name,
		Affixes: len(res.Build.Affixes),
		Aspects: len(res.Build.Aspects),
		Status:  "ok",
	})
	for _, w := range res.Warnings {
		r.rep.Warnings = append(r.rep.Warnings, fileio.BuildWarning{Build: name, Warning: w})
	}
	return nil
}

func (r *Runner) addFailure(name string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rep.Outcomes = append(r.rep.Outcomes, fileio.BuildOutcome{Build: name, Status: "failed"})
	r.rep.Failures = append(r.rep.Failures, fileio.BuildFailure{Build: name, Err: err.Error()})
}

func (r *Runner) sortReport() {
	sort.Slice(r.rep.Outcomes, func(i, j int) bool { return r.rep.Outcomes[i].Build < r.rep.Outcomes[j].Build })
	sort.Slice(r.rep.Warnings, func(i, j int) bool { return r.rep.Warnings[i].Build < r.rep.Warnings[j].Build })
	sort.Slice(r.rep.Failures, func(i, j int) bool { return r.rep.Failures[i].Build < r.rep.Failures[j].Build })
}

// listBuilds — имена билдов (без расширения) в алфавитном порядке.
func listBuilds(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("builds dir %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}
