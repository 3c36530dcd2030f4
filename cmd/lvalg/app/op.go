package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalg/algebra"
	"github.com/katalvlaran/lvalg/core"
)

type Op struct {
	cmd *cobra.Command

	mainopts *Options
	output   string
	format   string
	times    int
	loops    bool
}

// operation runs one algebra operation over the loaded operands. arity < 0
// accepts one or more operands.
type operation struct {
	arity int
	run   func(c *Op, gs []*core.Graph) (*core.Graph, error)
}

var operations = map[string]operation{
	"union": {-1, func(_ *Op, gs []*core.Graph) (*core.Graph, error) { return algebra.DisjointUnionAll(gs) }},
	"merge": {-1, func(_ *Op, gs []*core.Graph) (*core.Graph, error) { return algebra.MergeAll(gs) }},
	"intersection": {-1, func(_ *Op, gs []*core.Graph) (*core.Graph, error) {
		return algebra.IntersectionAll(gs)
	}},
	"difference": {2, func(_ *Op, gs []*core.Graph) (*core.Graph, error) { return algebra.Difference(gs[0], gs[1]) }},
	"compose":    {2, func(_ *Op, gs []*core.Graph) (*core.Graph, error) { return algebra.Compose(gs[0], gs[1]) }},
	"complement": {1, func(c *Op, gs []*core.Graph) (*core.Graph, error) {
		loops := core.NoSelfLoops
		if c.loops {
			loops = core.ContainSelfLoops
		}
		return algebra.Complementer(gs[0], loops)
	}},
	"multiply": {1, func(c *Op, gs []*core.Graph) (*core.Graph, error) { return algebra.Multiply(gs[0], c.times) }},
}

// operatorOperations maps operator symbols and operation names onto the
// command's operation names.
var operatorOperations = map[algebra.Operator]string{
	algebra.OpDisjointUnion: "union",
	algebra.OpMerge:         "merge",
	algebra.OpIntersection:  "intersection",
	algebra.OpDifference:    "difference",
	algebra.OpComplement:    "complement",
}

func NewOp(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "op <operation> <file> {<file>} -o <file>",
		Short: "combine graph files with an algebra operation",
		Long: `
Operations: union (+), merge (|), intersection (&), difference (-),
complement (~), compose and multiply. union, merge and intersection take
any number of operands; difference and compose take two; complement and
multiply take one.
`,
		Args: cobra.MinimumNArgs(2),
	}
	tweakCommand(cmd)

	c := &Op{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	addOutputFlags(flags, &c.output, &c.format, "output file")
	flags.IntVarP(&c.times, "times", "n", 2, "copies for multiply")
	flags.BoolVar(&c.loops, "loops", false, "complement with self-loops")
	cmd.MarkFlagRequired("output")
	return cmd
}

func lookupOperation(name string) (string, operation, error) {
	key := strings.ToLower(name)
	if o, err := algebra.ParseOperator(name); err == nil {
		key = operatorOperations[o]
	}
	op, ok := operations[key]
	if !ok {
		return "", operation{}, fmt.Errorf("unknown operation %q", name)
	}
	return key, op, nil
}

func (c *Op) Run(args []string) error {
	name, op, err := lookupOperation(args[0])
	if err != nil {
		return err
	}
	files := args[1:]
	if op.arity > 0 && len(files) != op.arity {
		return fmt.Errorf("%s: want %d operands, got %d", name, op.arity, len(files))
	}
	format, err := formatFlag("format", c.format)
	if err != nil {
		return err
	}

	gs, err := c.mainopts.readAll(files)
	if err != nil {
		return err
	}
	defer closeAll(gs)

	res, err := op.run(c, gs)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	defer res.Close()

	if err = c.mainopts.WriteGraph(c.output, res, format, nil); err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "%s: %s\n", c.output, res)
	return nil
}
