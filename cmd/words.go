package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/go-term/internal/config"
	"github.com/robalobadob/wordle/apps/go-term/internal/daily"
)

// newWordsCmd reports on the loaded word list, like a debug endpoint for the
// dictionary and the daily pick.
func newWordsCmd(v *viper.Viper) *cobra.Command {
	var reveal bool
	c := &cobra.Command{
		Use:   "words",
		Short: "Show word list statistics and the daily index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, time.Now())
			if err != nil {
				return err
			}
			closeLog, err := setupLogging(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			vocab, err := loadVocabulary(cfg)
			if err != nil {
				return err
			}
			idx := daily.WordIndex(cfg.Date, cfg.Salt, vocab.Len())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "source: %s\n", vocab.Source())
			fmt.Fprintf(out, "words:  %d\n", vocab.Len())
			fmt.Fprintf(out, "date:   %s\n", daily.DateKey(cfg.Date))
			fmt.Fprintf(out, "index:  %d\n", idx)
			if reveal {
				fmt.Fprintf(out, "word:   %s\n", vocab.At(idx))
			}
			return nil
		},
	}
	c.Flags().BoolVar(&reveal, "reveal", false, "also print the daily word")
	return c
}
