package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "logify",
		Short: "Logify - maintenance tickets and meter readings",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(); err != nil {
				// logger is not built yet: LOGIFY_LOG_DIR may come from .env
				log.Println("no .env file loaded, copy .env.example to .env first if in development")
			}
		},
		RunE: runServe,
	}

	rootCmd.AddCommand(
		newServeCommand(),
		newCreateAdminCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
