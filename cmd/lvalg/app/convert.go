package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

type Convert struct {
	cmd *cobra.Command

	mainopts *Options
	from     string
	to       string
}

func NewConvert(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "convert a graph file to another format",
		Long: `
Reads the input and writes it in the output format. Vertex names read from
symbolic formats are kept unless --names is given.
`,
		Args: cobra.ExactArgs(2),
	}
	tweakCommand(cmd)

	c := &Convert{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVar(&c.from, "from", "", "input format (default: from extension)")
	flags.StringVar(&c.to, "to", "", "output format (default: from extension)")
	return cmd
}

func (c *Convert) Run(args []string) error {
	from, err := formatFlag("from", c.from)
	if err != nil {
		return err
	}
	to, err := formatFlag("to", c.to)
	if err != nil {
		return err
	}

	g, names, err := c.mainopts.ReadGraph(args[0], from)
	if err != nil {
		return err
	}
	defer g.Close()

	if err = c.mainopts.WriteGraph(args[1], g, to, names); err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "%s: %s\n", args[1], g)
	return nil
}
