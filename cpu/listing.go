package cpu

import (
	"fmt"
	"slices"

	"github.com/xlab/treeprint"
)

// Listing renders the program as a tree: one branch per label, holding
// the instructions from that label to the next.
func (prog *Program) Listing(name string) (tree treeprint.Tree) {
	tree = treeprint.New()
	tree.SetValue(name)

	at := make(map[int][]string, len(prog.Labels))
	for label, pc := range prog.Labels {
		at[pc] = append(at[pc], label)
	}

	branch := tree
	for pc, line := range prog.Instructions() {
		labels, ok := at[int(pc)]
		if ok {
			slices.Sort(labels)
			branch = tree.AddBranch(fmt.Sprintf("%v:", labels[0]))
			for _, alias := range labels[1:] {
				branch.AddNode(fmt.Sprintf("%v:", alias))
			}
		}
		branch.AddNode(fmt.Sprintf("%04d %5d: %v", pc, line.LineNo, line))
	}

	// Labels at the end of the program.
	labels := at[len(prog.Lines)]
	slices.Sort(labels)
	for _, label := range labels {
		tree.AddBranch(fmt.Sprintf("%v:", label))
	}

	return
}
