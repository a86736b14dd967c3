package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/htaso/evaltracker/internal/db"
	"github.com/htaso/evaltracker/internal/storage"
)

var importDir string

var importJSONCmd = &cobra.Command{
	Use:   "import-json",
	Short: "Import legacy JSON evaluations into the database",
	Long:  `Read the per-trainer JSON evaluation files written by the old file-based deployment, normalize them to the current schema and insert them into PostgreSQL. Files that fail to parse are reported and skipped.`,
	RunE:  runImportJSON,
}

func init() {
	importJSONCmd.Flags().StringVar(&importDir, "dir", "evaluation_data", "Legacy data directory")
	rootCmd.AddCommand(importJSONCmd)
}

func runImportJSON(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	store := storage.New(importDir)
	entries, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to list legacy evaluations: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No legacy evaluations found")
		return nil
	}

	imported := 0
	skipped := 0
	for _, entry := range entries {
		rec, err := store.Load(entry.Path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Skipping %s: %v\n", entry.Path, err)
			skipped++
			continue
		}

		id, err := database.SaveEvaluation(ctx, rec)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Skipping %s: %v\n", entry.Path, err)
			skipped++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %s as %s\n", entry.Path, id)
		imported++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nImported %d evaluations, skipped %d\n", imported, skipped)
	return nil
}
