package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	LogFile      string

	// справочники
	AffixMap    string
	AspectMap   string
	UniquesFile string

	// пакетный режим
	BuildsDir string
	OutDir    string
	Workers   int

	// пороги матчинга (0..100)
	AffixThreshold  int
	AspectThreshold int
	WarnBelow       int

	MaxUploadMB int
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8084"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "16"))
	workers, _ := strconv.Atoi(getenv("WORKERS", "8"))
	affixThr, _ := strconv.Atoi(getenv("AFFIX_THRESHOLD", "60"))
	aspectThr, _ := strconv.Atoi(getenv("ASPECT_THRESHOLD", "55"))
	warnBelow, _ := strconv.Atoi(getenv("WARN_BELOW", "80"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:            getenv("HOST", "127.0.0.1"),
		Port:            port,
		AllowOrigins:    origins,
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFile:         getenv("LOG_FILE", "logs/d4-translate.log"),
		AffixMap:        getenv("AFFIX_MAP", "data/stat_map.json"),
		AspectMap:       getenv("ASPECT_MAP", "data/aspect_map.json"),
		UniquesFile:     getenv("UNIQUES_FILE", "data/uniques.json"),
		BuildsDir:       getenv("BUILDS_DIR", "data/builds"),
		OutDir:          getenv("OUT_DIR", "data/out"),
		Workers:         workers,
		AffixThreshold:  affixThr,
		AspectThreshold: aspectThr,
		WarnBelow:       warnBelow,
		MaxUploadMB:     mb,
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
