package main

import (
	"fmt"
	"os"

	"github.com/robalobadob/wordle/apps/go-term/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wordle:", err)
		os.Exit(1)
	}
}
