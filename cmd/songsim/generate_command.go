package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdql/songsim/internal/data"
	"github.com/gdql/songsim/internal/formatter"
	"github.com/gdql/songsim/internal/resolver"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var count int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print randomly generated songs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			format, err := ctx.outputFormat()
			if err != nil {
				return err
			}
			gen, closeLexicon, err := ctx.newGenerator(cmd.Context(), logger, seed)
			if err != nil {
				return err
			}
			defer closeLexicon()

			out := cmd.OutOrStdout()
			f := ctx.newFormatter(out)
			for i := range count {
				song := data.NewSong(fmt.Sprintf("%s_%d", resolver.GeneratedPrefix, i+1), gen.SongText())
				rendered, err := f.Format(&formatter.Result{Type: formatter.ResultSong, Song: &song}, format)
				if err != nil {
					return err
				}
				if i > 0 && format == formatter.FormatPlain {
					fmt.Fprintln(out)
				}
				fmt.Fprint(out, rendered)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of songs to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 uses [generator] seed, then the clock)")
	return cmd
}
