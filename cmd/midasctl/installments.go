package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/midas/internal/app"
	"github.com/MrJamesThe3rd/midas/internal/money"
)

func installmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "installments <outflow-id>",
		Short: "Generate the remaining installments of an outflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid outflow id %q: %w", args[0], err)
			}

			return withApp(cmd, func(a *app.App) error {
				created, err := a.Ledger.GenerateInstallments(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("generate installments: %w", err)
				}

				out := cmd.OutOrStdout()
				for _, o := range created {
					fmt.Fprintf(out, "%s  %d/%d  %s  %s\n",
						o.ExpenseDate.Format("2006-01-02"), *o.Installment, *o.TotalInstallments,
						money.Format(o.Amount), o.ID)
				}

				fmt.Fprintf(out, "%d installment(s) created\n", len(created))

				return nil
			})
		},
	}
}
