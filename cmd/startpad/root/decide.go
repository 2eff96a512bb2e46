package root

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/engine"
	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/ui"
)

func newDecideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Weigh decisions with pro/contra arguments",
	}
	cmd.AddCommand(
		newDecideNewCmd(),
		newDecideListCmd(),
		newDecideRmCmd(),
	)
	return cmd
}

// parseArgument reads "text" or "text:weight" with weight 1-5 (default 3).
func parseArgument(s string) (engine.Argument, error) {
	text := s
	weight := 3
	if i := strings.LastIndex(s, ":"); i >= 0 {
		if n, err := strconv.Atoi(s[i+1:]); err == nil {
			text = s[:i]
			weight = n
		}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return engine.Argument{}, fmt.Errorf("argument text must not be empty")
	}
	if weight < 1 || weight > 5 {
		return engine.Argument{}, fmt.Errorf("argument weight must be 1-5 (got %d)", weight)
	}
	return engine.Argument{Text: text, Weight: weight}, nil
}

func parseArguments(in []string) ([]engine.Argument, error) {
	var out []engine.Argument
	for _, s := range in {
		a, err := parseArgument(s)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func newDecideNewCmd() *cobra.Command {
	var pros, contras []string

	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Record a decision",
		Long:  "Arguments take the form \"text\" or \"text:weight\" with weight 1-5.\nExample: startpad decide new \"Neuer Job?\" --pro \"Mehr Gehalt:4\" --contra \"Pendeln:2\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			proArgs, err := parseArguments(pros)
			if err != nil {
				return err
			}
			contraArgs, err := parseArguments(contras)
			if err != nil {
				return err
			}

			d, err := svc.CreateDecision(ctx, args[0], proArgs, contraArgs)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconScale, d.Title))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Pro", d.ProScore))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Contra", d.ContraScore))
			fmt.Fprintln(cmd.OutOrStdout(), resultStyle(d.Result).Render(d.ResultText))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&pros, "pro", nil, "Pro argument \"text:weight\" (repeatable)")
	cmd.Flags().StringArrayVar(&contras, "contra", nil, "Contra argument \"text:weight\" (repeatable)")

	return cmd
}

func resultStyle(r engine.DecisionResult) interface{ Render(...string) string } {
	switch r {
	case engine.ResultPro:
		return ui.Good
	case engine.ResultContra:
		return ui.Bad
	default:
		return ui.Warn
	}
}

func newDecideListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded decisions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			decisions, err := svc.Decisions(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconScale, "Entscheidungen"))
			if len(decisions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No decisions yet."))
				return nil
			}
			for _, d := range decisions {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s — %s %s\n",
					d.Title,
					resultStyle(d.Result).Render(fmt.Sprintf("%s (%d:%d)", d.ResultText, d.ProScore, d.ContraScore)),
					ui.Muted.Render(d.ID))
			}
			return nil
		},
	}

	return cmd
}

func newDecideRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a decision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeleteDecision(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Decision deleted."))
			return nil
		},
	}

	return cmd
}
