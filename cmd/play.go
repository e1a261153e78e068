package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/go-term/internal/config"
	"github.com/robalobadob/wordle/apps/go-term/internal/daily"
	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/session"
	"github.com/robalobadob/wordle/apps/go-term/internal/terminal"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

// play runs one interactive session on the controlling terminal.
func play(cfg config.Config) error {
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := newGame(cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to load word list")
		return err
	}

	sc, err := terminal.New()
	if err != nil {
		log.Error().Err(err).Msg("failed to open terminal")
		return err
	}
	err = session.Run(sc, session.New(g, sc))
	log.Info().
		Str("game", g.ID).
		Str("outcome", g.Outcome().String()).
		Int("attempts", g.Attempts()).
		Msg("session closed")
	if errors.Is(err, terminal.ErrClosed) {
		return nil
	}
	return err
}

// newGame loads the vocabulary and picks the word for cfg.Date.
func newGame(cfg config.Config) (*game.Game, error) {
	vocab, err := loadVocabulary(cfg)
	if err != nil {
		return nil, err
	}
	idx := daily.WordIndex(cfg.Date, cfg.Salt, vocab.Len())
	secret := vocab.At(idx)
	g := game.New(vocab, secret, game.WithEvaluator(cfg.Evaluator))
	log.Info().
		Str("game", g.ID).
		Str("date", daily.DateKey(cfg.Date)).
		Int("index", idx).
		Str("scoring", cfg.Scoring).
		Msg("daily word selected")
	log.Debug().Str("game", g.ID).Str("secret", secret).Msg("secret")
	return g, nil
}

func loadVocabulary(cfg config.Config) (*words.Vocabulary, error) {
	var (
		vocab *words.Vocabulary
		err   error
	)
	if cfg.WordsFile == "" {
		vocab, err = words.LoadFileOrEmbedded(config.DefaultWordsFile)
	} else {
		vocab, err = words.LoadFile(cfg.WordsFile)
	}
	if err != nil {
		return nil, err
	}
	log.Info().Str("source", vocab.Source()).Int("words", vocab.Len()).Msg("word list loaded")
	return vocab, nil
}

// setupLogging points the global zerolog logger at cfg.LogFile. The terminal
// belongs to the board while a session runs, so logs only go to stderr when
// asked for explicitly.
func setupLogging(cfg config.Config) (func(), error) {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(lvl)

	var (
		out     io.Writer
		closeFn = func() {}
	)
	if cfg.LogFile == "-" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	} else {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return closeFn, nil
}

// bind ties viper keys to flags found by lookup.
func bind(v *viper.Viper, lookup func(string) *pflag.Flag, keys map[string]string) {
	for key, name := range keys {
		if err := v.BindPFlag(key, lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}
