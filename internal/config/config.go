package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds defaults for command flags.
type Config struct {
	Browser    string
	Headless   bool
	TestName   string
	Output     string
	HistoryDB  string
	Playwright string
}

func Default() Config {
	return Config{
		Browser:    "chromium",
		TestName:   "Recorded Test",
		Output:     "recorded_test.robot",
		HistoryDB:  ".rfrecord/history.db",
		Playwright: "playwright",
	}
}

// Load reads .env from the working directory if present, then overlays
// RFRECORD_* environment variables on the defaults.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv("RFRECORD_BROWSER"); v != "" {
		cfg.Browser = v
	}
	if v := getenv("RFRECORD_HEADLESS"); v != "" {
		h, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("parsing RFRECORD_HEADLESS: %w", err)
		}
		cfg.Headless = h
	}
	if v := getenv("RFRECORD_TEST_NAME"); v != "" {
		cfg.TestName = v
	}
	if v := getenv("RFRECORD_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := getenv("RFRECORD_HISTORY_DB"); v != "" {
		cfg.HistoryDB = v
	}
	if v := getenv("RFRECORD_PLAYWRIGHT"); v != "" {
		cfg.Playwright = v
	}

	return cfg, nil
}
