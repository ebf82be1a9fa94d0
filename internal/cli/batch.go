package cli

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nitingoyal0996/gbif-sub000/internal/app"
	"github.com/nitingoyal0996/gbif-sub000/internal/observability"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

type batchOptions struct {
	Dataset         string
	Input           string
	OutputDir       string
	Format          string
	Workers         int
	MetricsTextfile string
}

func newBatchCommand() *cobra.Command {
	opts := batchOptions{}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Resolve a file of place hierarchies and write the results",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Dataset, "dataset", "", "Reference dataset (GeoPackage or YAML fixture)")
	cmd.Flags().StringVar(&opts.Input, "input", "", "Place file (YAML or JSON list)")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	cmd.Flags().StringVar(&opts.Format, "format", "yaml", "Output format (yaml, json)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 1, "Places resolved concurrently")
	cmd.Flags().StringVar(&opts.MetricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this textfile")

	_ = viper.BindPFlag("dataset", cmd.Flags().Lookup("dataset"))
	_ = viper.BindPFlag("input", cmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("metrics_textfile", cmd.Flags().Lookup("metrics-textfile"))

	return cmd
}

func runBatch(cmd *cobra.Command, opts batchOptions) error {
	service := newAppService()
	metricsTextfile := resolveString(cmd, opts.MetricsTextfile, "metrics_textfile", "metrics-textfile")
	if strings.TrimSpace(metricsTextfile) != "" {
		collector, err := observability.NewResolutionCollector(prometheus.NewRegistry())
		if err != nil {
			return err
		}
		service = service.WithMetrics(collector)
	}
	result, err := service.Batch(commandContext(cmd), app.BatchRequest{
		Dataset:         resolveString(cmd, opts.Dataset, "dataset", "dataset"),
		InputPath:       resolveString(cmd, opts.Input, "input", "input"),
		OutputDir:       resolveString(cmd, opts.OutputDir, "output", "output"),
		Format:          types.OutputFormat(resolveString(cmd, opts.Format, "format", "format")),
		Workers:         resolveInt(cmd, opts.Workers, "workers", "workers"),
		MetricsTextfile: metricsTextfile,
	})
	if err != nil {
		return err
	}
	printSummary(result.Summary)
	fmt.Printf("written: %s\n", result.OutputPath)
	return nil
}

func printSummary(summary app.MatchSummary) {
	fmt.Printf("places: %d\n", summary.Total)
	fmt.Printf("- complete: %d\n", summary.Complete)
	fmt.Printf("- partial: %d\n", summary.Partial)
	fmt.Printf("- none: %d\n", summary.None)
	if summary.Failed > 0 {
		fmt.Printf("- failed: %d\n", summary.Failed)
	}
}
