package auxgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RosenZhu/llvm-epp/auxgraph"
)

func TestInit_StraightLine(t *testing.T) {
	proc := &stringProc{
		entry: "Entry",
		succs: map[string][]string{
			"Entry": {"B"},
			"B":     {"Exit"},
		},
	}
	g := auxgraph.New[string]()
	g.Init(proc)

	require.Equal(t, []string{"fake.exit", "Exit", "B", "Entry"}, g.Nodes())
	require.True(t, g.IsFakeExit(g.FakeExit()))
	require.Len(t, g.Succs("Exit"), 1)
	require.Equal(t, g.FakeExit(), g.Succs("Exit")[0].Tgt)
	require.False(t, g.Succs("Exit")[0].Real)
}

func TestInit_UniqueSink(t *testing.T) {
	proc := &stringProc{
		entry: "Entry",
		succs: map[string][]string{
			"Entry": {"L", "R"},
			"L":     {"J"},
			"R":     {"J"},
		},
	}
	g := auxgraph.New[string]()
	g.Init(proc)

	sinks := 0
	for _, b := range g.Nodes() {
		if len(g.Succs(b)) == 0 {
			sinks++
			require.True(t, g.IsFakeExit(b))
		}
	}
	require.Equal(t, 1, sinks)
}

func TestInit_UnreachableExcluded(t *testing.T) {
	proc := &stringProc{
		entry: "Entry",
		succs: map[string][]string{
			"Entry":  {"B"},
			"Island": {"B"},
		},
	}
	g := auxgraph.New[string]()
	g.Init(proc)
	require.NotContains(t, g.Nodes(), "Island")
}

func TestSegment_ReplacesEdgeAndRecordsMapping(t *testing.T) {
	proc := &stringProc{
		entry: "Entry",
		succs: map[string][]string{
			"Entry": {"H"},
			"H":     {"Body", "Exit"},
			"Body":  {"H"},
		},
	}
	g := auxgraph.New[string]()
	g.Init(proc)

	original := g.Exists("Body", "H", true)
	require.NotNil(t, original)

	err := g.Segment([]auxgraph.SegmentRequest[string]{{Src: "Body", Tgt: "H"}})
	require.NoError(t, err)

	require.Nil(t, g.Exists("Body", "H", true))
	pair, ok := g.GetSegmentMap()[original]
	require.True(t, ok)
	require.Equal(t, g.FakeExit(), pair.ToFakeExit.Tgt)
	require.Equal(t, "Body", pair.ToFakeExit.Src)
	require.Equal(t, g.Entry(), pair.FromEntry.Src)
	require.Equal(t, "H", pair.FromEntry.Tgt)
}

func TestSegment_MissingEdge(t *testing.T) {
	proc := &stringProc{entry: "Entry", succs: map[string][]string{"Entry": {"B"}}}
	g := auxgraph.New[string]()
	g.Init(proc)

	err := g.Segment([]auxgraph.SegmentRequest[string]{{Src: "Entry", Tgt: "Nope"}})
	require.ErrorIs(t, err, auxgraph.ErrEdgeNotFound)
}

func TestSegment_NotInitialized(t *testing.T) {
	g := auxgraph.New[string]()
	err := g.Segment([]auxgraph.SegmentRequest[string]{{Src: "Entry", Tgt: "B"}})
	require.ErrorIs(t, err, auxgraph.ErrNotInitialized)
}

func TestSegment_AlreadySegmented(t *testing.T) {
	proc := &stringProc{entry: "Entry", succs: map[string][]string{"Entry": {"B"}, "B": {"Exit"}}}
	g := auxgraph.New[string]()
	g.Init(proc)

	reqs := []auxgraph.SegmentRequest[string]{{Src: "Entry", Tgt: "B"}}
	require.NoError(t, g.Segment(reqs))
	require.ErrorIs(t, g.Segment(reqs), auxgraph.ErrAlreadySegmented)
}

func TestGetWeights_OnlyRealNonzero(t *testing.T) {
	proc := &stringProc{
		entry: "Entry",
		succs: map[string][]string{
			"Entry": {"L", "R"},
			"L":     {"J"},
			"R":     {"J"},
		},
	}
	g := auxgraph.New[string]()
	g.Init(proc)

	entryL := g.Exists("Entry", "L", true)
	entryR := g.Exists("Entry", "R", true)
	g.SetWeight(entryL, 0)
	g.SetWeight(entryR, 1)

	weights := g.GetWeights()
	require.Len(t, weights, 1)
	require.Equal(t, entryR, weights[0].Edge)
	require.Equal(t, int64(1), weights[0].Weight.Int64())
}

func TestClear_ResetsGraph(t *testing.T) {
	proc := &stringProc{entry: "Entry", succs: map[string][]string{"Entry": {"B"}}}
	g := auxgraph.New[string]()
	g.Init(proc)
	require.NotEmpty(t, g.Nodes())

	g.Clear()
	require.Empty(t, g.Nodes())
	require.Empty(t, g.GetSegmentMap())
}
