package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/imadgeboyega/destiny-fusion/internal/fusion"
	"github.com/imadgeboyega/destiny-fusion/internal/matrix"
)

func newCompatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compat <person1> <person2>",
		Short: "Score the compatibility of two people",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p1, p2, err := loadPeople(args[0], args[1])
			if err != nil {
				return err
			}
			req := &fusion.CompatibilityRequest{Person1: p1, Person2: p2}
			if err := fusion.Validate(req); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}
			res, err := fusion.NewService(nil, 0).Compatibility(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func newMatrixCmd() *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "matrix <subject>",
		Short: "Evaluate the destiny matrix for one subject",
		Long:  "The subject file holds a saju chart and an optional astro chart.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req fusion.MatrixRequest
			if err := loadFile(args[0], &req); err != nil {
				return err
			}
			if cmd.Flags().Changed("top") {
				req.Options.TopInsights = top
			}
			if err := fusion.Validate(&req); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}
			res, err := fusion.NewService(nil, 0).Matrix(cmd.Context(), &req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res.Report)
		},
	}
	cmd.Flags().IntVar(&top, "top", matrix.DefaultTopInsights, "Number of top insights to report")
	return cmd
}

func newSeunCmd() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "seun <person1> <person2>",
		Short: "Analyze one calendar year for two people",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p1, p2, err := loadPeople(args[0], args[1])
			if err != nil {
				return err
			}
			if year == 0 {
				year = time.Now().Year()
			}
			req := &fusion.SeunRequest{Saju1: p1.Saju, Saju2: p2.Saju, Year: year}
			if err := fusion.Validate(req); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}
			res, err := fusion.NewService(nil, 0).Seun(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "Calendar year to analyze (default current year)")
	return cmd
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Describe the destiny matrix layers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), matrix.Summarize())
		},
	}
}
