package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gdql/songsim/internal/formatter"
	"github.com/gdql/songsim/internal/lexer"
)

func newTokenizeCommand(ctx *commandContext) *cobra.Command {
	var stream bool

	cmd := &cobra.Command{
		Use:   "tokenize [text|-]",
		Short: "Print the word counts of a text (stdin when omitted or -)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readTextArg(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if stream {
				for _, tok := range lexer.Tokens(text) {
					fmt.Fprintln(out, tok)
				}
				return nil
			}
			format, err := ctx.outputFormat()
			if err != nil {
				return err
			}
			rendered, err := ctx.newFormatter(out).Format(&formatter.Result{
				Type:   formatter.ResultCounts,
				Counts: lexer.Tokenize(text),
			}, format)
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&stream, "stream", false, "Print tokens in order, one per line")
	return cmd
}

// readTextArg returns args[0], or all of stdin when args is empty or "-".
func readTextArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(raw), "\n"), nil
}
