package app

import (
	"fmt"

	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalg/core"
	"github.com/katalvlaran/lvalg/graphio"
)

type Options struct {
	fs       vfs.FileSystem
	config   string
	level    string
	names    string
	directed bool
	seed     *int64
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs: optionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
	}

	maincmd := &cobra.Command{
		Use:   "lvalg <options> <cmd> <args>",
		Short: "combine, decompose and convert graph files",
		Long: `
This command builds graphs from generators, combines graph files with
the graph algebra operators and converts between file formats.

Formats are derived from the file extension (.edges, .ncol, .lgl,
.adjlist, .graphml, .dot, .net, .dimacs); a trailing .gz, .zst or .lz4
compresses the file.
`,
		TraverseChildren:  true,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return opts.Complete(cmd) },
	}

	flags := maincmd.PersistentFlags()
	flags.StringVarP(&opts.config, "config", "c", "", "config file (YAML)")
	flags.StringVarP(&opts.level, "log-level", "L", "", "log level (error, warn, info, debug, trace)")
	flags.StringVarP(&opts.names, "names", "N", "", "vertex names for symbolic formats (decimal, symbol, excel, alphanumeric, hex, prefix:<p>)")
	flags.BoolVarP(&opts.directed, "directed", "d", false, "create directed graphs and read edge lists as directed")

	maincmd.AddCommand(NewInfo(opts))
	maincmd.AddCommand(NewGenerate(opts))
	maincmd.AddCommand(NewOp(opts))
	maincmd.AddCommand(NewEval(opts))
	maincmd.AddCommand(NewDecompose(opts))
	maincmd.AddCommand(NewConvert(opts))
	return maincmd
}

// Complete merges the config file into the options. Explicit flags win.
func (o *Options) Complete(cmd *cobra.Command) error {
	if o.config != "" {
		cfg, err := ReadConfig(o.fs, o.config)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if cfg.LogLevel != nil && !flags.Changed("log-level") {
			o.level = *cfg.LogLevel
		}
		if cfg.Names != nil && !flags.Changed("names") {
			o.names = *cfg.Names
		}
		if cfg.Directed != nil && !flags.Changed("directed") {
			o.directed = *cfg.Directed
		}
		o.seed = cfg.Seed
	}
	if o.level != "" {
		if err := setupLogging(o.level); err != nil {
			return err
		}
	}
	log.Debug("options", "config", o.config, "names", o.names, "directed", o.directed)
	return nil
}

// ReadGraph loads a graph file. Names are returned for symbolic formats.
func (o *Options) ReadGraph(path string, format graphio.Format) (*core.Graph, []string, error) {
	return graphio.ReadFile(o.fs, path, format, graphio.WithDirected(o.directed))
}

// WriteGraph stores g. The --names scheme wins over names carried over
// from an input file.
func (o *Options) WriteGraph(path string, g *core.Graph, format graphio.Format, names []string) error {
	var opts []graphio.Option
	switch {
	case o.names != "":
		fn, err := graphio.ParseNames(o.names)
		if err != nil {
			return err
		}
		opts = append(opts, graphio.WithNames(fn))
	case names != nil:
		opts = append(opts, graphio.WithNames(func(idx int) string {
			if idx < len(names) {
				return names[idx]
			}
			return graphio.DecimalNames(idx)
		}))
	}
	if err := graphio.WriteFile(o.fs, path, g, format, opts...); err != nil {
		return err
	}
	log.Debug("wrote graph", "path", path, "graph", g.String())
	return nil
}

// readAll loads every path in order and closes what was read on failure.
func (o *Options) readAll(paths []string) ([]*core.Graph, error) {
	gs := make([]*core.Graph, 0, len(paths))
	for _, p := range paths {
		g, _, err := o.ReadGraph(p, graphio.FormatAuto)
		if err != nil {
			closeAll(gs)
			return nil, err
		}
		gs = append(gs, g)
	}
	return gs, nil
}

func closeAll(gs []*core.Graph) {
	for _, g := range gs {
		if err := g.Close(); err != nil {
			log.LogError(err, "close graph")
		}
	}
}

func formatFlag(name, value string) (graphio.Format, error) {
	if value == "" {
		return graphio.FormatAuto, nil
	}
	f, err := graphio.ParseFormat(value)
	if err != nil {
		return graphio.FormatAuto, fmt.Errorf("--%s: %w", name, err)
	}
	return f, nil
}
