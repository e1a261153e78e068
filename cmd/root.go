// Package cmd provides the command-line entry point.
//
// Settings come from flags, WORDLE_* environment variables (a .env file in
// the working directory is loaded first) and an optional .wordle.yml:
//
//	WORDLE_WORDS_FILE  dictionary to read (default /usr/share/dict/american-english,
//	                   falling back to the built-in list when that file is absent)
//	WORDLE_DATE        puzzle date, YYYY-MM-DD (default today)
//	WORDLE_SALT        changes the daily word sequence
//	WORDLE_SCORING     naive | wordle
//	WORDLE_LOG_LEVEL   zerolog level
//	WORDLE_LOG_FILE    log destination, "-" for stderr
package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/go-term/internal/config"
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "wordle",
		Short: "Guess the daily five-letter word in six tries",
		Long: `Play today's word in the terminal.

Type letters to fill the current row, ENTER to submit, BACKSPACE to erase
and ESC to quit. After each guess the tiles and the keyboard are colored:
green for the right letter in the right place, yellow for a letter that is
elsewhere in the word, red for a letter that is not in the word.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.Init(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, time.Now())
			if err != nil {
				return err
			}
			return play(cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./.wordle.yml)")
	pf.String("words", "", "word list file, one word per line")
	pf.String("date", "", "puzzle date as YYYY-MM-DD (default today)")
	pf.String("salt", "wordle", "salt for the daily word sequence")
	pf.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.String("log-file", "", "log file, - for stderr (default $TMPDIR/wordle.log)")
	root.Flags().String("scoring", "naive", "letter scoring: naive or wordle")

	bind(v, pf.Lookup, map[string]string{
		config.KeyWordsFile: "words",
		config.KeyDate:      "date",
		config.KeySalt:      "salt",
		config.KeyLogLevel:  "log-level",
		config.KeyLogFile:   "log-file",
	})
	bind(v, root.Flags().Lookup, map[string]string{config.KeyScoring: "scoring"})

	root.AddCommand(newWordsCmd(v))
	return root
}
