package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lineshape/lineshape/model"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list available models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range model.Names() {
				m, err := model.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\n", m.Name, m.Doc)
			}
			return tw.Flush()
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [model]",
		Short: "show model parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.Lookup(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(m.Name))
			fmt.Fprintln(out, m.Doc)
			fmt.Fprintln(out)

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "param\tdefault\tmin\tmax\tdescription")
			for _, h := range m.Hints {
				fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%s\n", h.Name, h.Default, h.Min, h.Max, h.Doc)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if m.HasGuess() {
				fmt.Fprintln(out, "\nsupports guess")
			}
			return nil
		},
	}
}
