package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"structmapper/builder"
	"structmapper/classmap"
	"structmapper/internal/analyze"
	"structmapper/internal/config"
	"structmapper/internal/logging"
	"structmapper/internal/mapping"
)

var (
	version = "dev"
	commit  = "none"
)

// options shared by every command.
type rootOptions struct {
	verbosity  int
	configPath string
	dir        string
	cfg        *config.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "structmapper",
		Short: "Resolve field mappings between Go struct pairs",
		Long: `structmapper resolves how the fields of one Go type map onto another.
Declared mappings come from a YAML file; whatever they leave open is
inferred from names, accessors, struct tags and //mapping: directives.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				path = config.Discover(opts.dir)
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			opts.cfg = cfg

			logging.SetupLogger(max(opts.verbosity, cfg.Log.Verbosity))
			log.Debug().Str("command", cmd.Name()).Str("config", path).Msg("Command started")

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.StringVar(&opts.configPath, "config", "", "config file (default: structmapper.{yaml,toml} in --dir)")
	flags.StringVarP(&opts.dir, "dir", "C", ".", "directory packages and config are resolved from")

	rootCmd.AddCommand(
		newResolveCmd(opts),
		newCheckCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "structmapper version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
		},
	}
}

// session is the loaded state a command works on.
type session struct {
	graph    *analyze.TypeGraph
	oracle   *analyze.Oracle
	resolver *mapping.GraphResolver
	builder  *builder.Builder
	conf     classmap.Configuration
}

func (o *rootOptions) load(patterns []string) (*session, error) {
	done := logging.LogOperationStart(logging.GetLogger("cli"), "load packages")
	defer done()

	graph, err := analyze.NewAnalyzer().WithDir(o.dir).LoadPackages(patterns...)
	if err != nil {
		return nil, err
	}

	s := &session{
		graph:    graph,
		oracle:   analyze.NewOracle(graph),
		resolver: mapping.NewGraphResolver(graph),
		conf:     o.cfg.Configuration(),
	}
	s.builder = builder.New(&s.conf, s.oracle, nil)

	log.Info().Int("types", len(graph.Types)).Int("packages", len(graph.Packages)).Msg("Packages loaded")

	return s, nil
}
