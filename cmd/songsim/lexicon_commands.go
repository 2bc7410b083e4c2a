package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdql/songsim/internal/config"
	"github.com/gdql/songsim/internal/data/sqlite"
	"github.com/gdql/songsim/internal/errors"
	"github.com/gdql/songsim/internal/formatter"
)

func newLexiconCommand(ctx *commandContext) *cobra.Command {
	lexCmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Manage the generator word database",
	}

	lexCmd.AddCommand(newLexiconInitCommand(ctx))
	lexCmd.AddCommand(newLexiconImportCommand())
	lexCmd.AddCommand(newLexiconListCommand(ctx))

	return lexCmd
}

func newLexiconInitCommand(ctx *commandContext) *cobra.Command {
	var schemaOnly bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a lexicon database seeded with the sample word lists",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ctx.lexiconPath()
			if len(args) == 1 {
				expanded, err := config.ExpandPath(args[0])
				if err != nil {
					return err
				}
				path = expanded
			}
			if path == sqlite.MemoryPath {
				return &errors.Error{
					Type:    errors.ErrLexicon,
					Message: "no lexicon path",
					Hint:    "pass a path or set [lexicon] path in the config",
				}
			}
			initFn := sqlite.Init
			if schemaOnly {
				initFn = sqlite.InitSchema
			}
			if err := initFn(path); err != nil {
				return errors.Wrap(errors.ErrLexicon, err, "initialize %s", path)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Lexicon created: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&schemaOnly, "schema-only", false, "Create the tables without the sample words")
	return cmd
}

func newLexiconImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <db> <file>",
		Short: "Add words from a JSON or YAML {category: [words]} file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := sqlite.Open(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrLexicon, err, "open %s", args[0])
			}
			defer db.Close()
			loaded, skipped, err := sqlite.LoadWordListFromFile(cmd.Context(), db, args[1])
			if err != nil {
				return errors.Wrap(errors.ErrLexicon, err, "import %s", args[1])
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Words loaded: %d, skipped: %d\n", loaded, skipped)
			return nil
		},
	}
}

func newLexiconListCommand(ctx *commandContext) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show word counts per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ctx.lexiconPath()
			if dbPath != "" {
				path = dbPath
			}
			format, err := ctx.outputFormat()
			if err != nil {
				return err
			}
			db, err := openLexicon(path)
			if err != nil {
				return err
			}
			defer db.Close()

			cats, err := db.Categories(cmd.Context())
			if err != nil {
				return errors.Wrap(errors.ErrLexicon, err, "list categories")
			}
			counts := make(map[string]int, len(cats))
			for _, c := range cats {
				counts[c.Code] = c.Words
			}
			out := cmd.OutOrStdout()
			rendered, err := ctx.newFormatter(out).Format(&formatter.Result{
				Type:     formatter.ResultCounts,
				Counts:   counts,
				CountKey: "category",
			}, format)
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Lexicon database path (defaults to --lexicon / [lexicon] path)")
	return cmd
}
