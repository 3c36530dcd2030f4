package app

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func optionalDefaulted[T any](def T, list ...T) T {
	if len(list) > 0 {
		return list[0]
	}
	return def
}

func tweakCommand(cmd *cobra.Command) {
	cmd.DisableFlagsInUseLine = true
	cmd.Flags().SortFlags = false
}

func intArg(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}

// indexedPath inserts "-<i>" before the first dot of the file name:
// "out/comp.graphml.gz" becomes "out/comp-3.graphml.gz".
func indexedPath(p string, i int) string {
	dir, file := path.Split(p)
	stem, suffix := file, ""
	if idx := strings.Index(file, "."); idx > 0 {
		stem, suffix = file[:idx], file[idx:]
	}
	return fmt.Sprintf("%s%s-%d%s", dir, stem, i, suffix)
}

// addOutputFlags registers the -o/--output and -f/--format pair shared by
// the commands that write a graph.
func addOutputFlags(flags *pflag.FlagSet, output, format *string, usage string) {
	flags.StringVarP(output, "output", "o", "", usage)
	flags.StringVarP(format, "format", "f", "", "output format (default: from extension)")
}
