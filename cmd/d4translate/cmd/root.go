package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"d4-translate/internal/config"
	"d4-translate/internal/fileio"
	"d4-translate/internal/refdata"
	"d4-translate/internal/translate/model"
	"d4-translate/internal/translate/service"
)

var RootCmd = &cobra.Command{
	Use:   "d4translate",
	Short: "Translate scraped build-guide stat tables to canonical affix/aspect IDs",
	Long: `d4translate maps free-text gear-stat descriptions from scraped build
guides onto the canonical D4Companion vocabulary. Batch mode (run) walks a
directory of build files; serve mode exposes the same engine over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup — общий старт обоих режимов: конфиг, логгер, словари, движок.
// Ошибка загрузки справочников фатальна: без словарей переводить нечего.
func setup() (config.Config, zerolog.Logger, *service.Translator, error) {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	refs, err := refdata.Load(fileio.Disk{}, cfg.AffixMap, cfg.AspectMap, cfg.UniquesFile)
	if err != nil {
		return cfg, logger, nil, fmt.Errorf("load reference store: %w", err)
	}
	logger.Info().
		Int("affixes", refs.Affixes.Len()).
		Int("aspects", refs.Aspects.Len()).
		Int("uniques", len(refs.Uniques)).
		Msg("reference store loaded")

	opt := model.Options{
		AffixThreshold:  cfg.AffixThreshold,
		AspectThreshold: cfg.AspectThreshold,
		WarnBelow:       cfg.WarnBelow,
	}
	return cfg, logger, service.NewTranslator(refs, opt, logger), nil
}
