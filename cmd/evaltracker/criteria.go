package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/htaso/evaltracker/internal/criteria"
)

var criteriaFile string

var criteriaCmd = &cobra.Command{
	Use:   "criteria",
	Short: "Parse a criteria workbook and print the extracted tree",
	Long:  `Parse the evaluation criteria workbook and print the section, subsection and item tree. Useful for checking what the form will render after the workbook changes.`,
	RunE:  runCriteria,
}

func init() {
	criteriaCmd.Flags().StringVar(&criteriaFile, "file", "Evaluator Training Eval form.xlsx", "Path to the criteria workbook")
	rootCmd.AddCommand(criteriaCmd)
}

func runCriteria(cmd *cobra.Command, _ []string) error {
	sections, err := criteria.LoadFromWorkbook(criteriaFile)
	if err != nil {
		return fmt.Errorf("failed to load workbook: %w", err)
	}

	for _, section := range sections {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", section.Name)
		for _, sub := range section.Subsections {
			if sub.MaxScore != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s (max %d)\n", sub.Name, *sub.MaxScore)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", sub.Name)
			}
			for _, item := range sub.Items {
				na := ""
				if item.AllowNA {
					na = " [N/A allowed]"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "    %s: %s%s\n", item.Key, item.Text, na)
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d sections\n", len(sections))
	return nil
}
