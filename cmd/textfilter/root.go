package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"textfilter/internal/app"
	"textfilter/internal/logging"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var logFormatFlag string
	var summaryFlag bool

	ctx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:   "textfilter <filePath> <filterOptions>",
		Short: "Filter the words of a text file",
		Long: `Reads a text file, splits it into words and applies the filters selected by
<filterOptions>, any combination of:

  v  remove words with a vowel in the middle
  s  remove words shorter than three characters
  t  remove words containing the letter t

Filters always run in the order v, s, t. Put -- before the arguments when the
file path starts with a dash:

  textfilter -- -notes.txt vst`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, closer, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()
			logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

			out := cmd.OutOrStdout()
			runner := app.New(out, logger)
			runner.Summary = cfg.Output.Summary || summaryFlag
			runner.Color = cfg.Output.Color && shouldColorize(out)

			if code := runner.Run(args); code != app.ExitOK {
				return &exitError{code: code}
			}
			return nil
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&logLevelFlag, "log-level", "", "Log level override (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFormatFlag, "log-format", "", "Log format override (console, json)")
	rootCmd.Flags().BoolVar(&summaryFlag, "summary", false, "Print a per-stage word count table after the result")

	return rootCmd
}
