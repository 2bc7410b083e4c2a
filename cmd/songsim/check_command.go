package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gdql/songsim/internal/data"
	"github.com/gdql/songsim/internal/data/bst"
	"github.com/gdql/songsim/internal/detector"
	"github.com/gdql/songsim/internal/formatter"
	"github.com/gdql/songsim/internal/import/catalog"
	"github.com/gdql/songsim/internal/metrics"
	"github.com/gdql/songsim/internal/resolver"
	"github.com/gdql/songsim/internal/vocab"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var catalogPath, text, textFile, title string
	var threshold float64

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Rank catalog songs by similarity to a probe text",
		Example: `  songsim check --catalog songs.json --text "sun moon sun"
  songsim check --catalog songs.yaml --file probe.txt --threshold 0.8 --format table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("threshold") {
				threshold = cfg.Detection.Threshold
			}
			if textFile != "" {
				raw, err := os.ReadFile(textFile)
				if err != nil {
					return fmt.Errorf("read probe: %w", err)
				}
				text = string(raw)
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			format, err := ctx.outputFormat()
			if err != nil {
				return err
			}

			entries, err := catalog.Load(catalogPath)
			if err != nil {
				return err
			}
			store := bst.New()
			added, replaced, skipped, err := catalog.Insert(cmd.Context(), store, entries)
			if err != nil {
				return err
			}
			logger.Debug("catalog loaded", "path", catalogPath, "added", added, "replaced", replaced, "skipped", skipped)

			title = resolver.NormalizeTitle(title)
			if title == "" {
				title = resolver.FallbackTitle(resolver.ProbePrefix, time.Now())
			}
			probe := data.NewSong(title, text)

			det := detector.New(store, vocab.New(), detector.WithLogger(logger), detector.WithMetrics(metrics.New()))
			res := det.Detect(&probe, threshold)

			out := cmd.OutOrStdout()
			rendered, err := ctx.newFormatter(out).Format(&formatter.Result{Type: formatter.ResultMatches, Detection: res}, format)
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "JSON or YAML file of {title, text} entries")
	cmd.Flags().StringVar(&text, "text", "", "Probe text")
	cmd.Flags().StringVar(&textFile, "file", "", "Read the probe text from a file")
	cmd.Flags().StringVar(&title, "title", "", "Probe title (a stored song with this title is not compared)")
	cmd.Flags().Float64Var(&threshold, "threshold", detector.DefaultThreshold, "Minimum similarity to report (inclusive)")
	_ = cmd.MarkFlagRequired("catalog")
	cmd.MarkFlagsOneRequired("text", "file")
	cmd.MarkFlagsMutuallyExclusive("text", "file")
	return cmd
}
