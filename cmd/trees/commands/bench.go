package commands

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/treekit/trees"
	"github.com/treekit/trees/avl"
	"github.com/treekit/trees/llrb"
	"github.com/treekit/trees/rbtree"
)

const (
	benchCmdUse   = "bench"
	benchCmdShort = "Compare insert, search and delete across the tree variants"

	configFlag  = "config"
	configShort = "c"
	configUsage = "config file with benchmark parameters"

	verboseFlag  = "verbose"
	verboseUsage = "log each finished workload"
)

// benchVariant wires a tree variant into the harness. clone must produce
// a structural deep copy: the search and delete trials mutate or traverse
// their own snapshot, never the prebuilt tree.
type benchVariant struct {
	name  string
	fresh func() trees.Tree[uint32]
	clone func(trees.Tree[uint32]) trees.Tree[uint32]
}

func benchVariants() []benchVariant {
	return []benchVariant{
		{
			name:  trees.KindLLRB,
			fresh: func() trees.Tree[uint32] { return llrb.New[uint32]() },
			clone: func(t trees.Tree[uint32]) trees.Tree[uint32] { return t.(*llrb.Tree[uint32]).Clone() },
		},
		{
			name:  trees.KindRBTree,
			fresh: func() trees.Tree[uint32] { return rbtree.New[uint32]() },
			clone: func(t trees.Tree[uint32]) trees.Tree[uint32] { return t.(*rbtree.Tree[uint32]).Clone() },
		},
		{
			name:  trees.KindAVL,
			fresh: func() trees.Tree[uint32] { return avl.New[uint32]() },
			clone: func(t trees.Tree[uint32]) trees.Tree[uint32] { return t.(*avl.Tree[uint32]).Clone() },
		},
	}
}

// NewBenchCommand creates the bench subcommand.
func NewBenchCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   benchCmdUse,
		Short: benchCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := LoadBenchConfig(configPath)
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			return runBench(os.Stdout, cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&configPath, configFlag, configShort, "", configUsage)
	cmd.Flags().BoolVar(&verbose, verboseFlag, false, verboseUsage)

	return cmd
}

func runBench(w io.Writer, cfg *BenchConfig, logger *slog.Logger) error {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Size", "Variant", "Ordered insert", "Random insert", "Search", "Delete"})

	for _, size := range cfg.Sizes {
		shuffled := shuffledKeys(size, cfg.Seed)
		sampleLen := size / cfg.SampleDivisor
		if sampleLen == 0 {
			sampleLen = size
		}
		sample := shuffled[:sampleLen]

		for _, v := range benchVariants() {
			ordered := timeIt(func() {
				t := v.fresh()
				for k := 0; k < size; k++ {
					t.Insert(uint32(k))
				}
			})

			var built trees.Tree[uint32]
			random := timeIt(func() {
				t := v.fresh()
				for _, k := range shuffled {
					t.Insert(k)
				}
				built = t
			})

			searchTree := v.clone(built)
			search := timeIt(func() {
				for _, k := range sample {
					searchTree.Contains(k)
				}
			})

			deleteTree := v.clone(built)
			deletes := timeIt(func() {
				for _, k := range sample {
					deleteTree.Delete(k)
				}
			})

			logger.Debug("workloads finished",
				"variant", v.name,
				"size", size,
				"ordered_insert", ordered,
				"random_insert", random,
				"search", search,
				"delete", deletes,
			)

			tw.AppendRow(table.Row{
				humanize.Comma(int64(size)),
				v.name,
				fmtDuration(ordered),
				fmtDuration(random),
				fmtDuration(search),
				fmtDuration(deletes),
			})
		}
		tw.AppendSeparator()
	}

	fmt.Fprintln(w, tw.Render())

	return nil
}

// shuffledKeys returns 0..n-1 deterministically shuffled.
func shuffledKeys(n int, seed int64) []uint32 {
	keys := make([]uint32, n)
	for i := range keys {
		keys[i] = uint32(i)
	}
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	return keys
}

func timeIt(fn func()) time.Duration {
	start := time.Now()
	fn()

	return time.Since(start)
}

func fmtDuration(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}
