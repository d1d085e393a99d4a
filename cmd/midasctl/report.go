package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/midas/internal/app"
	"github.com/MrJamesThe3rd/midas/internal/money"
)

func reportCmd() *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the monthly summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app.App) error {
				y := ""
				if year != 0 {
					y = strconv.Itoa(year)
				}

				p, err := a.Reports.Period(strconv.Itoa(month), y)
				if err != nil {
					return err
				}

				s, err := a.Reports.Summary(cmd.Context(), p)
				if err != nil {
					return fmt.Errorf("summary: %w", err)
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

				fmt.Fprintf(w, "Period\t%02d/%d\n", int(p.Month), p.Year)
				fmt.Fprintf(w, "Income\t%s\n", money.Format(s.Income))
				fmt.Fprintf(w, "Spent\t%s\n", money.Format(s.Spent))
				fmt.Fprintf(w, "Balance\t%s\n\n", money.Format(s.Balance))

				for _, c := range s.Categories {
					fmt.Fprintf(w, "  %s\t%s\n", c.Category, money.Format(c.Total))
				}

				for _, o := range s.Origins {
					fmt.Fprintf(w, "  %s\t%s\n", o.Origin.Label(), money.Format(o.Total))
				}

				return w.Flush()
			})
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "month number (1-12)")
	cmd.Flags().IntVar(&year, "year", 0, "year (defaults to the current one)")

	_ = cmd.MarkFlagRequired("month")

	return cmd
}
