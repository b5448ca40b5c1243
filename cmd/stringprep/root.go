package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stringprep",
	Short: "Prepare Unicode strings per RFC 3454",
	Long: `stringprep prepares Unicode strings according to RFC 3454:
it maps, normalizes, and checks the input under a preparation profile and
prints the resulting UTF-8 bytes.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
