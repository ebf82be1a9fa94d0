package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/nitingoyal0996/gbif-sub000/internal/app"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

type resolveOptions struct {
	Dataset   string
	Continent string
	Country   string
	State     string
	County    string
	Locality  string
	Format    string
	Trace     bool
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve one place hierarchy against the reference dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Dataset, "dataset", "", "Reference dataset (GeoPackage or YAML fixture)")
	cmd.Flags().StringVar(&opts.Continent, "continent", "", "Continent name (informational, never matched)")
	cmd.Flags().StringVar(&opts.Country, "country", "", "Country name")
	cmd.Flags().StringVar(&opts.State, "state", "", "State or province name")
	cmd.Flags().StringVar(&opts.County, "county", "", "County name")
	cmd.Flags().StringVar(&opts.Locality, "locality", "", "Locality name")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format (text, yaml, json)")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "Print the query trace for complete matches too")

	_ = viper.BindPFlag("dataset", cmd.Flags().Lookup("dataset"))
	_ = viper.BindPFlag("trace", cmd.Flags().Lookup("trace"))

	return cmd
}

func runResolve(cmd *cobra.Command, opts resolveOptions) error {
	text := strings.EqualFold(strings.TrimSpace(opts.Format), "text")
	format, ok := types.ParseOutputFormat(opts.Format)
	if !text && !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported output format: " + opts.Format)
	}
	service := newAppService()
	result, err := service.Resolve(commandContext(cmd), app.ResolveRequest{
		Dataset: resolveString(cmd, opts.Dataset, "dataset", "dataset"),
		Place: types.PlaceHierarchy{
			Continent: opts.Continent,
			Country:   opts.Country,
			State:     opts.State,
			County:    opts.County,
			Locality:  opts.Locality,
		},
	})
	if err != nil {
		return err
	}
	if text {
		printResolvedPlace(os.Stdout, result.Place, resolveBool(cmd, opts.Trace, "trace", "trace"))
		return nil
	}
	return encodeResolvedPlace(os.Stdout, result.Place, format)
}

func printResolvedPlace(out io.Writer, place types.ResolvedPlace, trace bool) {
	fmt.Fprintf(out, "place: %s\n", place.PlaceHierarchy.String())
	fmt.Fprintf(out, "match: %s (%s)\n", place.MatchType, place.Note)
	for _, level := range place.Hierarchy {
		fmt.Fprintf(out, "  %s: %s [%s]\n", level.Level.Label(), level.Name, level.GID)
	}
	if trace || place.MatchType != types.MatchComplete {
		fmt.Fprintln(out, "trace:")
		for _, line := range place.QueryTrace {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}
}

func encodeResolvedPlace(out io.Writer, place types.ResolvedPlace, format types.OutputFormat) error {
	var (
		data []byte
		err  error
	)
	if format == types.OutputFormatJSON {
		data, err = json.MarshalIndent(place, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(place)
	}
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode resolved place").
			WithCause(err)
	}
	_, err = out.Write(data)
	return err
}
