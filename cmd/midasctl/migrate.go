package main

import (
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/midas/internal/app"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, (*app.App).Migrate)
		},
	}
}
