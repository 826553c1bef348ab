package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sparkcalc/internal/logger"
	"sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/tasks/calculator"
)

func pressCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "press <label>...",
		Short: "Press keypad buttons by label and print the final state",
		Long: `Press keypad buttons by label and print the final state.

Labels are the button captions: ` + buttonLabels() + `
ASCII aliases are accepted: / for ÷, sqrt for √, x^2 for x², pi for π.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.GetLogger()
			e := calc.New(opts.cfg.EngineOptions())
			pad := calculator.NewKeypad()

			for _, label := range args {
				err := pad.Press(e, label)
				if errors.Is(err, calculator.ErrUnknownButton) {
					return err
				}
				if err != nil {
					log.Warn().Str("button", label).Err(err).Msg("button failed")
				}
			}

			snap := e.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "expression: %s\n", snap.Expression)
			fmt.Fprintf(out, "result: %s\n", snap.Result)
			fmt.Fprintln(out, "history:")
			for _, line := range snap.History {
				fmt.Fprintf(out, "  %s\n", line)
			}
			return nil
		},
	}
	return cmd
}

func buttonLabels() string {
	var labels []string
	for _, b := range calculator.NewKeypad().Buttons() {
		labels = append(labels, b.Label)
	}
	return strings.Join(labels, " ")
}
