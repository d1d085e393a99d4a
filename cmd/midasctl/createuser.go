package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/midas/internal/app"
	"github.com/MrJamesThe3rd/midas/internal/user"
)

func createUserCmd() *cobra.Command {
	var params user.RegisterParams

	cmd := &cobra.Command{
		Use:   "createuser",
		Short: "Create a user, optionally with staff access",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app.App) error {
				u, err := a.Users.Register(cmd.Context(), params)
				if err != nil {
					return fmt.Errorf("create user: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s) staff=%t\n", u.Email, u.ID, u.Staff)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&params.Email, "email", "", "login email")
	cmd.Flags().StringVar(&params.Name, "name", "", "display name")
	cmd.Flags().StringVar(&params.Password, "password", "", "initial password")
	cmd.Flags().BoolVar(&params.Staff, "staff", false, "grant access to the back-office endpoints")

	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
