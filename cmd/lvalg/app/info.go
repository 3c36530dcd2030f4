package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalg/algebra"
	"github.com/katalvlaran/lvalg/core"
	"github.com/katalvlaran/lvalg/graphio"
)

type Info struct {
	cmd *cobra.Command

	mainopts *Options
	format   string
}

func NewInfo(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file> {<file>}",
		Short: "show vertex, edge and component counts of graph files",
		Args:  cobra.MinimumNArgs(1),
	}
	tweakCommand(cmd)

	c := &Info{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.format, "format", "f", "", "input format (default: from extension)")
	return cmd
}

func (c *Info) Run(args []string) error {
	format, err := formatFlag("format", c.format)
	if err != nil {
		return err
	}
	out := c.cmd.OutOrStdout()
	for _, p := range args {
		g, _, err := c.mainopts.ReadGraph(p, format)
		if err != nil {
			return err
		}
		err = c.describe(p, g)
		g.Close()
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	return nil
}

func (c *Info) describe(p string, g *core.Graph) error {
	ends, err := g.EdgeList()
	if err != nil {
		return err
	}
	loops := 0
	for i := 0; i+1 < len(ends); i += 2 {
		if ends[i] == ends[i+1] {
			loops++
		}
	}
	comps, err := algebra.Decompose(g)
	if err != nil {
		return err
	}
	closeAll(comps)

	kind := "undirected"
	if g.Directed() {
		kind = "directed"
	}
	out := c.cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", p)
	if f, err := graphio.DetectFormat(p); err == nil {
		fmt.Fprintf(out, "  format:     %s\n", f)
	}
	fmt.Fprintf(out, "  kind:       %s\n", kind)
	fmt.Fprintf(out, "  vertices:   %d\n", g.VCount())
	fmt.Fprintf(out, "  edges:      %d\n", g.ECount())
	fmt.Fprintf(out, "  loops:      %d\n", loops)
	fmt.Fprintf(out, "  components: %d\n", len(comps))
	return nil
}
