package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sparkcalc/internal/logger"
	"sparkcalc/sparkos/calc"
)

func evalCmd(opts *rootOptions) *cobra.Command {
	var showHistory bool
	cmd := &cobra.Command{
		Use:   "eval [--] <expr>...",
		Short: "Evaluate expressions and print their results",
		Long: `Evaluate expressions and print their results.

An expression that starts with a minus sign reads as a flag; put -- before it.`,
		Example: `  sparkcalc eval "7+3" "2*(3+4)"
  sparkcalc eval -- -5+3`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.GetLogger()
			e := calc.New(opts.cfg.EngineOptions())
			out := cmd.OutOrStdout()

			for _, expr := range args {
				e.ClearAll()
				e.AppendToken(expr)
				if err := e.Evaluate(); err != nil {
					fmt.Fprintln(out, e.Result())
					return err
				}
				log.Debug().Str("expr", expr).Str("result", e.Result()).Msg("evaluated")
				fmt.Fprintln(out, e.Result())
			}

			if showHistory {
				fmt.Fprintln(out, "history:")
				for _, line := range e.Snapshot().History {
					fmt.Fprintf(out, "  %s\n", line)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showHistory, "history", false, "print the history after evaluating")
	return cmd
}
