package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nitingoyal0996/gbif-sub000/internal/app"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

type layersOptions struct {
	Dataset string
}

func newLayersCommand() *cobra.Command {
	opts := layersOptions{}
	cmd := &cobra.Command{
		Use:   "layers",
		Short: "Show the searchable layers and the columns each level uses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLayers(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Dataset, "dataset", "", "Reference dataset (GeoPackage or YAML fixture)")
	_ = viper.BindPFlag("dataset", cmd.Flags().Lookup("dataset"))
	return cmd
}

func runLayers(cmd *cobra.Command, opts layersOptions) error {
	service := newAppService()
	result, err := service.Layers(commandContext(cmd), app.LayersRequest{
		Dataset: resolveString(cmd, opts.Dataset, "dataset", "dataset"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("layers: %d\n", len(result.Catalog.Layers))
	for _, layer := range result.Catalog.Layers {
		fmt.Printf("- %s\n", layer.Name)
		for level := types.LevelCountry; level <= types.MaxLevel; level++ {
			cols, ok := layer.Levels[level]
			if !ok {
				continue
			}
			fmt.Printf("  %s: names=[%s] id=%s parent=%s\n",
				level.Label(),
				strings.Join(cols.NameColumns, ", "),
				orDash(cols.IDColumn),
				orDash(cols.ParentIDColumn))
		}
	}
	return nil
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
