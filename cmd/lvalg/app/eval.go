package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalg/algebra"
	"github.com/katalvlaran/lvalg/core"
	"github.com/katalvlaran/lvalg/graphio"
)

type Eval struct {
	cmd *cobra.Command

	mainopts *Options
	output   string
	format   string
	graphs   []string
}

func NewEval(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expression> {-g <name>=<file>} -o <file>",
		Short: "evaluate a graph algebra expression",
		Long: `
Evaluates an expression over named graph files. Operators by binding
strength: ~ (complement), then + (disjoint union) and - (difference),
then & (intersection), then | (merge). Parentheses group.

  lvalg eval "(J - G) | H" -g J=full.edges -g G=star.edges -g H=ring.edges -o out.edges
`,
		Args: cobra.ExactArgs(1),
	}
	tweakCommand(cmd)

	c := &Eval{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	addOutputFlags(flags, &c.output, &c.format, "output file")
	flags.StringArrayVarP(&c.graphs, "graph", "g", nil, "graph binding <name>=<file>")
	cmd.MarkFlagRequired("output")
	return cmd
}

func (c *Eval) Run(args []string) error {
	format, err := formatFlag("format", c.format)
	if err != nil {
		return err
	}

	env := map[string]*core.Graph{}
	defer func() {
		for _, g := range env {
			g.Close()
		}
	}()
	for _, b := range c.graphs {
		name, file, ok := strings.Cut(b, "=")
		if !ok || name == "" || file == "" {
			return fmt.Errorf("invalid graph binding %q (want <name>=<file>)", b)
		}
		if _, dup := env[name]; dup {
			return fmt.Errorf("graph %q bound twice", name)
		}
		g, _, err := c.mainopts.ReadGraph(file, graphio.FormatAuto)
		if err != nil {
			return err
		}
		env[name] = g
	}

	res, err := algebra.Eval(args[0], env)
	if err != nil {
		return err
	}
	defer res.Close()

	if err = c.mainopts.WriteGraph(c.output, res, format, nil); err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "%s: %s\n", c.output, res)
	return nil
}
