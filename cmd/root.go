package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "recipe-service",
		Short:         "Recipe lookup service",
		Long:          `Serves the recipe API and offers offline ingredient tooling.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	var envFile string
	root.PersistentFlags().StringVar(&envFile, "env-file", defaultEnvFile,
		"dotenv file loaded before configuration, existing variables take precedence")
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return loadEnvFile(envFile, cmd.Flags().Changed("env-file"))
	}

	root.AddCommand(newServeCmd(), newParseCmd())
	return root
}
