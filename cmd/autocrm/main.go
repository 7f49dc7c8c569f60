package main

import (
	"os"

	"github.com/spf13/cobra"

	"autocrm/internal/interfaces/cli/migrate"
	"autocrm/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "autocrm",
		Short: "AutoCRM - customer support ticketing",
		Long:  `AutoCRM is a customer support ticketing service with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
