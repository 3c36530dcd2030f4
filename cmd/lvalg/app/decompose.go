package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalg/algebra"
	"github.com/katalvlaran/lvalg/graphio"
)

type Decompose struct {
	cmd *cobra.Command

	mainopts *Options
	output   string
	format   string
	mode     string
	minSize  int
	max      int
}

func NewDecompose(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decompose <file> -o <file>",
		Short: "split a graph file into its connected components",
		Long: `
Writes one file per component, ordered by lowest vertex id. The index is
inserted before the first dot of the output name: -o comp.edges writes
comp-0.edges, comp-1.edges, ...
`,
		Args: cobra.ExactArgs(1),
	}
	tweakCommand(cmd)

	c := &Decompose{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	addOutputFlags(flags, &c.output, &c.format, "output file name pattern")
	flags.StringVarP(&c.mode, "mode", "m", "weak", "connectedness (weak, strong)")
	flags.IntVar(&c.minSize, "min-size", 1, "skip components with fewer vertices")
	flags.IntVar(&c.max, "max", algebra.Unlimited, "stop after this many components (-1: all)")
	cmd.MarkFlagRequired("output")
	return cmd
}

func (c *Decompose) Run(args []string) error {
	var mode algebra.Connectedness
	switch c.mode {
	case algebra.Weak.String():
		mode = algebra.Weak
	case algebra.Strong.String():
		mode = algebra.Strong
	default:
		return fmt.Errorf("invalid mode %q", c.mode)
	}
	format, err := formatFlag("format", c.format)
	if err != nil {
		return err
	}

	g, _, err := c.mainopts.ReadGraph(args[0], graphio.FormatAuto)
	if err != nil {
		return err
	}
	defer g.Close()

	comps, err := algebra.Decompose(g,
		algebra.WithMode(mode),
		algebra.WithMinElements(c.minSize),
		algebra.WithMaxComponents(c.max))
	if err != nil {
		return err
	}
	defer closeAll(comps)

	out := c.cmd.OutOrStdout()
	for i, comp := range comps {
		p := indexedPath(c.output, i)
		if err = c.mainopts.WriteGraph(p, comp, format, nil); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", p, comp)
	}
	fmt.Fprintf(out, "%d %s components\n", len(comps), mode)
	return nil
}
