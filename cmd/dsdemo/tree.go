package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-dsbasics/Trees"
)

// sampleTree is root(1) with children 2 and 5; 2 has children 3 and 4.
func sampleTree() *Trees.Node {
	root, n2, n3, n4, n5 := Trees.NewNode(1), Trees.NewNode(2), Trees.NewNode(3), Trees.NewNode(4), Trees.NewNode(5)
	root.Left, root.Right = n2, n5
	n2.Left, n2.Right = n3, n4
	return root
}

func (a *app) treeCommand() *cobra.Command {
	var target int
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Walk and search a fixed 5 node tree in pre-, in- and post-order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := Trees.New(sampleTree(), Trees.WithLogger(a.log.Named("tree")))
			out := cmd.OutOrStdout()
			for _, o := range []Trees.Order{Trees.Pre, Trees.In, Trees.Post} {
				printWalk(out, t, o)
			}
			for _, o := range []Trees.Order{Trees.Pre, Trees.In, Trees.Post} {
				if n := t.Search(target, o); n != nil {
					fmt.Fprintf(out, "%v search %d: %v\n", o, target, n)
				} else {
					fmt.Fprintf(out, "%v search %d: not found\n", o, target)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&target, "target", 4, "key to search for")
	return cmd
}

func printWalk(w io.Writer, t *Trees.Tree, o Trees.Order) {
	var ks []string
	t.Walk(o, func(n *Trees.Node) {
		ks = append(ks, strconv.Itoa(n.Key))
	})
	fmt.Fprintf(w, "%v: %s\n", o, strings.Join(ks, " "))
}
