package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/treekit/trees"
)

const (
	printCmdUse   = "print <key>..."
	printCmdShort = "Insert keys into a tree variant and render it"

	variantFlag  = "variant"
	variantShort = "t"
	variantUsage = "tree variant (llrb, rbtree, avl)"

	deleteFlag  = "delete"
	deleteUsage = "keys to delete after inserting"

	// Above this height the grid render grows too wide to be readable.
	maxRenderHeight = 8
)

// NewPrintCommand creates the print subcommand.
func NewPrintCommand() *cobra.Command {
	var (
		variant    string
		deleteArgs []string
	)

	cmd := &cobra.Command{
		Use:   printCmdUse,
		Short: printCmdShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			keys, err := parseKeys(args)
			if err != nil {
				return err
			}
			deletes, err := parseKeys(deleteArgs)
			if err != nil {
				return err
			}

			return runPrint(os.Stdout, variant, keys, deletes)
		},
	}

	cmd.Flags().StringVarP(&variant, variantFlag, variantShort, trees.KindLLRB, variantUsage)
	cmd.Flags().StringSliceVar(&deleteArgs, deleteFlag, nil, deleteUsage)

	return cmd
}

func parseKeys(args []string) ([]uint32, error) {
	keys := make([]uint32, 0, len(args))
	for _, arg := range args {
		k, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", arg, err)
		}
		keys = append(keys, uint32(k))
	}

	return keys, nil
}

func runPrint(w io.Writer, variant string, keys, deletes []uint32) error {
	tree, err := trees.New[uint32](variant)
	if err != nil {
		return err
	}

	for _, k := range keys {
		tree.Insert(k)
	}
	for _, k := range deletes {
		tree.Delete(k)
	}

	if tree.IsEmpty() {
		fmt.Fprintln(w, "This is an empty tree.")
		return nil
	}

	if tree.Height() <= maxRenderHeight {
		fmt.Fprintln(w, tree.Sprint())
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "In-order:  %s\n", joinKeys(tree.InOrder()))
	fmt.Fprintf(w, "Pre-order: %s\n", joinKeys(tree.PreOrder()))
	fmt.Fprintln(w)
	fmt.Fprintln(w, statsTable(variant, tree))

	if v, ok := tree.(interface{ IsValid() bool }); ok {
		if v.IsValid() {
			fmt.Fprintf(w, "red-black invariants: %s\n", color.GreenString("valid"))
		} else {
			fmt.Fprintf(w, "red-black invariants: %s\n", color.RedString("INVALID"))
		}
	}

	return nil
}

func statsTable(variant string, tree trees.Tree[uint32]) string {
	minKey, _ := tree.Min()
	maxKey, _ := tree.Max()

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows([]table.Row{
		{"variant", variant},
		{"keys", humanize.Comma(int64(len(tree.InOrder())))},
		{"height", tree.Height()},
		{"leaves", tree.CountLeaves()},
		{"min", minKey},
		{"max", maxKey},
	})

	return tw.Render()
}

func joinKeys(keys []uint32) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.FormatUint(uint64(k), 10)
	}

	return strings.Join(parts, " ")
}
