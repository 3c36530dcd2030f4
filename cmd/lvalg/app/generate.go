package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalg/builder"
	"github.com/katalvlaran/lvalg/core"
)

type Generate struct {
	cmd *cobra.Command

	mainopts *Options
	output   string
	format   string
	loops    bool
	mutual   bool
	open     bool
	periodic bool
	mode     string
	center   int
	repeats  int
	seed     int64
}

func NewGenerate(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <kind> {<arg>} -o <file>",
		Short: "write a generated graph",
		Long: `
Kinds and their arguments:

  full     <n>             complete graph (--loops adds self-loops)
  star     <n>             star (--mode out|in|mutual|undirected, --center)
  ring     <n>             ring (--mutual, --open)
  lattice  <d1> {<dk>}     square lattice (--periodic, --mutual)
  tree     <n> <children>  k-ary tree (--mode out|in|undirected)
  citation <n>             every vertex cites all earlier ones
  gnp      <n> <p>         Erdős–Rényi G(n,p) (--seed)
  debruijn <m> <n>         de Bruijn graph of length n words over m letters
  kautz    <m> <n>         Kautz graph K(m,n)
  lcf      <n> <shift> {<shift>}
                           LCF notation [shifts]^r on n vertices (--repeats)

--directed creates directed graphs; star and tree default to out-mode then.
debruijn and kautz graphs are always directed. Put negative lcf shifts
after "--": generate -r 7 -o heawood.net -- lcf 14 5 -5
`,
		Args: cobra.MinimumNArgs(2),
	}
	tweakCommand(cmd)

	c := &Generate{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	addOutputFlags(flags, &c.output, &c.format, "output file")
	flags.BoolVar(&c.loops, "loops", false, "add self-loops (full)")
	flags.BoolVar(&c.mutual, "mutual", false, "add reverse edges in directed rings and lattices")
	flags.BoolVar(&c.open, "open", false, "leave the ring open (a path)")
	flags.BoolVar(&c.periodic, "periodic", false, "wrap lattice dimensions")
	flags.StringVarP(&c.mode, "mode", "m", "", "star or tree orientation")
	flags.IntVar(&c.center, "center", 0, "star center")
	flags.IntVarP(&c.repeats, "repeats", "r", 1, "repetitions of the lcf shift list")
	flags.Int64Var(&c.seed, "seed", 0, "random seed (gnp; default from config or clock)")
	cmd.MarkFlagRequired("output")
	return cmd
}

func (c *Generate) Run(args []string) error {
	format, err := formatFlag("format", c.format)
	if err != nil {
		return err
	}
	g, err := c.build(args[0], args[1:])
	if err != nil {
		return err
	}
	defer g.Close()

	if err = c.mainopts.WriteGraph(c.output, g, format, nil); err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "%s: %s\n", c.output, g)
	return nil
}

func (c *Generate) build(kind string, args []string) (*core.Graph, error) {
	directed := c.mainopts.directed
	gopts := []core.GraphOption{core.WithDirected(directed)}

	ints := func(names ...string) ([]int, error) {
		if len(args) != len(names) {
			return nil, fmt.Errorf("%s: want %d arguments, got %d", kind, len(names), len(args))
		}
		vals := make([]int, len(names))
		for i, name := range names {
			v, err := intArg(name, args[i])
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return vals, nil
	}

	switch kind {
	case "full":
		v, err := ints("vertex count")
		if err != nil {
			return nil, err
		}
		return builder.NewFull(v[0], c.loops, gopts...)
	case "star":
		v, err := ints("vertex count")
		if err != nil {
			return nil, err
		}
		mode, err := c.starMode(directed)
		if err != nil {
			return nil, err
		}
		return builder.NewStar(v[0], mode, c.center)
	case "ring":
		v, err := ints("vertex count")
		if err != nil {
			return nil, err
		}
		return builder.NewRing(v[0], c.mutual, !c.open, gopts...)
	case "lattice":
		dims := make([]int, len(args))
		for i, a := range args {
			d, err := intArg("dimension", a)
			if err != nil {
				return nil, err
			}
			dims[i] = d
		}
		return builder.NewLattice(dims, c.periodic, c.mutual, gopts...)
	case "tree":
		v, err := ints("vertex count", "children")
		if err != nil {
			return nil, err
		}
		mode, err := c.treeMode(directed)
		if err != nil {
			return nil, err
		}
		return builder.NewTree(v[0], v[1], mode)
	case "citation":
		v, err := ints("vertex count")
		if err != nil {
			return nil, err
		}
		return builder.BuildGraph(gopts, nil, builder.FullCitation(v[0]))
	case "gnp":
		if len(args) != 2 {
			return nil, fmt.Errorf("gnp: want 2 arguments, got %d", len(args))
		}
		n, err := intArg("vertex count", args[0])
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid probability %q", args[1])
		}
		return builder.BuildGraph(gopts, []builder.BuilderOption{builder.WithSeed(c.randomSeed())}, builder.RandomGNP(n, p))
	case "debruijn":
		v, err := ints("alphabet size", "word length")
		if err != nil {
			return nil, err
		}
		return builder.NewDeBruijn(v[0], v[1])
	case "kautz":
		v, err := ints("alphabet size", "word length")
		if err != nil {
			return nil, err
		}
		return builder.NewKautz(v[0], v[1])
	case "lcf":
		vals := make([]int, len(args))
		for i, a := range args {
			d, err := intArg("lcf argument", a)
			if err != nil {
				return nil, err
			}
			vals[i] = d
		}
		return builder.NewLCF(vals[0], vals[1:], c.repeats, gopts...)
	}
	return nil, fmt.Errorf("unknown graph kind %q", kind)
}

func (c *Generate) randomSeed() int64 {
	switch {
	case c.cmd.Flags().Changed("seed"):
		return c.seed
	case c.mainopts.seed != nil:
		return *c.mainopts.seed
	}
	return time.Now().UnixNano()
}

func (c *Generate) starMode(directed bool) (builder.StarMode, error) {
	if c.mode == "" {
		if directed {
			return builder.StarOut, nil
		}
		return builder.StarUndirected, nil
	}
	for _, m := range []builder.StarMode{builder.StarOut, builder.StarIn, builder.StarMutual, builder.StarUndirected} {
		if m.String() == c.mode {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid star mode %q", c.mode)
}

func (c *Generate) treeMode(directed bool) (builder.TreeMode, error) {
	if c.mode == "" {
		if directed {
			return builder.TreeOut, nil
		}
		return builder.TreeUndirected, nil
	}
	for _, m := range []builder.TreeMode{builder.TreeOut, builder.TreeIn, builder.TreeUndirected} {
		if m.String() == c.mode {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid tree mode %q", c.mode)
}
