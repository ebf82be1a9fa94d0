package cli

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nitingoyal0996/gbif-sub000/internal/app"
	"github.com/nitingoyal0996/gbif-sub000/internal/policies"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "GADM_RESOLVER"

type RootConfig struct {
	ConfigFile   string
	EnvFile      string
	LogLevel     string
	LayerInclude []string
	LayerExclude []string
	NameColumns  []string
	IDColumn     string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:          "gadm-resolver",
		Short:        "Resolve place hierarchies against GADM administrative boundaries",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadEnvFile(cfg.EnvFile); err != nil {
				return err
			}
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	flags.StringVar(&cfg.EnvFile, "env-file", "", "Dotenv file loaded before reading the environment")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	flags.StringSliceVar(&cfg.LayerInclude, "layer-include", nil, "Only search layers matching these patterns (exact, prefix*, *)")
	flags.StringSliceVar(&cfg.LayerExclude, "layer-exclude", nil, "Never search layers matching these patterns")
	flags.StringSliceVar(&cfg.NameColumns, "name-column", nil, "Name column templates, {level} is replaced by the level number")
	flags.StringVar(&cfg.IDColumn, "id-column", "", "Identifier column template")
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("layers.include", flags.Lookup("layer-include"))
	_ = viper.BindPFlag("layers.exclude", flags.Lookup("layer-exclude"))
	_ = viper.BindPFlag("columns.name", flags.Lookup("name-column"))
	_ = viper.BindPFlag("columns.id", flags.Lookup("id-column"))

	cmd.AddCommand(newResolveCommand())
	cmd.AddCommand(newBatchCommand())
	cmd.AddCommand(newLayersCommand())
	cmd.AddCommand(newInspectCommand())
	cmd.AddCommand(newValidateCommand())
	return cmd
}

func loadEnvFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to load env file").
			WithCause(err)
	}
	return nil
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("gadm-resolver")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/gadm-resolver")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// commandContext carries the global logger so core debug output reaches it.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := context.Background()
	if cmd != nil && cmd.Context() != nil {
		ctx = cmd.Context()
	}
	return log.Logger.WithContext(ctx)
}

func newAppService() app.Service {
	service := app.NewService()

	convention := types.DefaultColumnConvention()
	if names := viper.GetStringSlice("columns.name"); len(names) > 0 {
		convention.NameColumns = names
	}
	if id := strings.TrimSpace(viper.GetString("columns.id")); id != "" {
		convention.IDColumn = id
	}
	service = service.WithConvention(convention)

	include := viper.GetStringSlice("layers.include")
	exclude := viper.GetStringSlice("layers.exclude")
	if len(include) > 0 || len(exclude) > 0 {
		service = service.WithPolicy(policies.NewLayerPolicy(include, exclude))
	}
	return service
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodePermissionDenied:
		return 3
	case errbuilder.CodeFailedPrecondition:
		return 4
	case errbuilder.CodeNotFound, errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}
