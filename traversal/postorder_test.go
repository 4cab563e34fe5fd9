package traversal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RosenZhu/llvm-epp/traversal"
)

func chainSuccs(edges map[string][]string) func(string) []string {
	return func(b string) []string { return edges[b] }
}

func TestPostOrder_StraightLine(t *testing.T) {
	succs := chainSuccs(map[string][]string{
		"Entry": {"B"},
		"B":     {"Exit"},
	})
	order := traversal.PostOrder("Entry", succs)
	require.Equal(t, []string{"Exit", "B", "Entry"}, order)
}

func TestPostOrder_Diamond(t *testing.T) {
	succs := chainSuccs(map[string][]string{
		"Entry": {"L", "R"},
		"L":     {"J"},
		"R":     {"J"},
	})
	order := traversal.PostOrder("Entry", succs)
	require.Equal(t, []string{"J", "L", "R", "Entry"}, order)
}

func TestPostOrder_ToleratesCycle(t *testing.T) {
	succs := chainSuccs(map[string][]string{
		"Entry": {"H"},
		"H":     {"Body", "Exit"},
		"Body":  {"H"}, // back edge
	})
	order := traversal.PostOrder("Entry", succs)
	// Every reachable block appears exactly once, deepest first.
	require.ElementsMatch(t, []string{"Entry", "H", "Body", "Exit"}, order)
	require.Equal(t, "Entry", order[len(order)-1])
}

func TestPostOrder_UnreachableExcluded(t *testing.T) {
	succs := chainSuccs(map[string][]string{
		"Entry":  {"B"},
		"Island": {"B"}, // not reachable from Entry
	})
	order := traversal.PostOrder("Entry", succs)
	require.ElementsMatch(t, []string{"Entry", "B"}, order)
}
