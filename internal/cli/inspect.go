package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nitingoyal0996/gbif-sub000/internal/app"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

type inspectOptions struct {
	OutputDir string
	Format    string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a batch result and list places that did not resolve completely",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	cmd.Flags().StringVar(&opts.Format, "format", "yaml", "Format the batch was written in (yaml, json)")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
		Format:    types.OutputFormat(resolveString(cmd, opts.Format, "format", "format")),
	})
	if err != nil {
		return err
	}
	fmt.Printf("dataset: %s\n", result.Dataset)
	printSummary(result.Summary)
	if len(result.Unresolved) > 0 {
		fmt.Println("not fully resolved:")
	}
	for _, place := range result.Unresolved {
		deepest := "-"
		if level, ok := place.Hierarchy.Deepest(); ok {
			deepest = level.GID
		}
		fmt.Printf("- %s: %s at %s (%s)\n", place.PlaceHierarchy.String(), place.MatchType, deepest, place.Note)
	}
	return nil
}
