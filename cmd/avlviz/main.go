// Command avlviz builds an AVL tree from integer keys and prints its shape,
// either as a console tree or as Graphviz DOT.
//
//	avlviz 8 3 10 1 6 14 --erase 3
//	avlviz --dot 1 2 3 4 5 | dot -Tsvg > tree.svg
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/avl"
)

const (
	flagDot   = "dot"
	flagErase = "erase"
	flagColor = "color"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "avlviz [flags] key...",
		Short:         "Visualize an AVL tree built from integer keys",
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          run,
	}
	cmd.Flags().Bool(flagDot, false, "print Graphviz DOT instead of a console tree")
	cmd.Flags().IntSlice(flagErase, nil, "keys to erase after building the tree")
	cmd.Flags().Bool(flagColor, false, "color the console tree even if output is not a terminal")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	tree := avl.NewOrdered[int, struct{}]()
	for _, arg := range args {
		k, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid key %q: %w", arg, err)
		}
		tree.Insert(k, struct{}{})
	}
	erase, _ := cmd.Flags().GetIntSlice(flagErase)
	for _, k := range erase {
		if err := tree.Erase(k); err != nil {
			return fmt.Errorf("erase %d: %w", k, err)
		}
	}
	if err := tree.Check(); err != nil {
		return err
	}
	containers.T().Infof("avlviz: tree with %d keys, height %d", tree.Len(), tree.Height())
	w := cmd.OutOrStdout()
	if dot, _ := cmd.Flags().GetBool(flagDot); dot {
		return tree.ToDot(w)
	}
	if colored, _ := cmd.Flags().GetBool(flagColor); colored {
		tree.FprintColored(w, &avl.DefaultPalette)
	} else {
		tree.Fprint(w)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
