// Package config resolves runtime settings from flags, WORDLE_* environment
// variables (optionally loaded from a .env file) and an optional YAML file.
//
// Precedence, highest first: flags, environment, config file, defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/go-term/internal/daily"
	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// Keys understood by Load.
const (
	KeyWordsFile = "words_file"
	KeyDate      = "date"
	KeySalt      = "salt"
	KeyScoring   = "scoring"
	KeyLogLevel  = "log_level"
	KeyLogFile   = "log_file"
)

// DefaultWordsFile is the system dictionary read when no word file is set.
const DefaultWordsFile = "/usr/share/dict/american-english"

// Config is the resolved configuration for one run.
type Config struct {
	// WordsFile is the dictionary to read. Empty means DefaultWordsFile with
	// the embedded list as fallback.
	WordsFile string
	Date      time.Time
	Salt      string
	Scoring   string
	Evaluator game.Evaluator
	LogLevel  string
	// LogFile is a path, or "-" for stderr.
	LogFile string
}

// Init prepares v: loads .env into the process environment, enables WORDLE_*
// lookups and reads cfgFile (or ./.wordle.yml when present).
func Init(v *viper.Viper, cfgFile string) error {
	_ = godotenv.Load()

	SetDefaults(v)
	v.SetEnvPrefix("WORDLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	for _, k := range []string{KeyWordsFile, KeyDate, KeySalt, KeyScoring, KeyLogLevel, KeyLogFile} {
		_ = v.BindEnv(k)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		return nil
	}
	v.AddConfigPath(".")
	v.SetConfigType("yaml")
	v.SetConfigName(".wordle")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySalt, "wordle")
	v.SetDefault(KeyScoring, "naive")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, filepath.Join(os.TempDir(), "wordle.log"))
}

// Load resolves and validates a Config from v. now supplies the date when
// none is configured.
func Load(v *viper.Viper, now time.Time) (Config, error) {
	cfg := Config{
		WordsFile: strings.TrimSpace(v.GetString(KeyWordsFile)),
		Date:      now,
		Salt:      v.GetString(KeySalt),
		Scoring:   strings.ToLower(strings.TrimSpace(v.GetString(KeyScoring))),
		LogLevel:  v.GetString(KeyLogLevel),
		LogFile:   v.GetString(KeyLogFile),
	}

	if s := strings.TrimSpace(v.GetString(KeyDate)); s != "" {
		d, err := daily.ParseDate(s)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s %q: want YYYY-MM-DD", KeyDate, s)
		}
		cfg.Date = d
	}

	eval, ok := game.EvaluatorFor(cfg.Scoring)
	if !ok {
		return Config{}, fmt.Errorf("config: %s %q: want naive or wordle", KeyScoring, cfg.Scoring)
	}
	cfg.Evaluator = eval
	return cfg, nil
}
