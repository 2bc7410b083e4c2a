package main

import (
	"github.com/spf13/cobra"

	"github.com/gdql/songsim/internal/session"
)

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "songsim",
		Short:         "Song store with lyric generation and similarity checks",
		Long:          "Run without a subcommand to start the interactive menu.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, ctx)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.format, "format", "", "Output format: plain, table, json, csv")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.lexicon, "lexicon", "", "Lexicon database path (\":memory:\" for the built-in sample)")

	rootCmd.AddCommand(newTokenizeCommand(ctx))
	rootCmd.AddCommand(newGenerateCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newLexiconCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func runSession(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.logger(cmd)
	if err != nil {
		return err
	}
	format, err := ctx.outputFormat()
	if err != nil {
		return err
	}
	gen, closeLexicon, err := ctx.newGenerator(cmd.Context(), logger, 0)
	if err != nil {
		return err
	}
	defer closeLexicon()

	sess := session.New(session.Options{
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Generator: gen,
		Formatter: ctx.newFormatter(cmd.OutOrStdout()),
		Format:    format,
		Logger:    logger,
		Threshold: &cfg.Detection.Threshold,
	})
	logger.Info("interactive session", "session_id", sess.ID())
	return sess.Run(cmd.Context())
}
