package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"book-library-api/pkg/logger"
)

var samplesDir string

func main() {
	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"))

	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Database utility for the book library API",
	}
	rootCmd.PersistentFlags().StringVar(&samplesDir, "samples", "samples", "directory containing the sample JSON files")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "add-data",
			Short: "Load the sample authors, books, users and votes",
			RunE: func(cmd *cobra.Command, args []string) error {
				return addData(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "remove-data",
			Short: "Wipe all data and reset the id sequences",
			RunE: func(cmd *cobra.Command, args []string) error {
				return removeData(cmd.Context())
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
