package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	appstate "github.com/atomicstack/tmux-popup-pathfinder/internal/state"
)

type constRanker struct{ score int }

func (r constRanker) Score(string, string) (int, bool) { return r.score, true }

func newTabs(names ...string) []appstate.Tab {
	tabs := make([]appstate.Tab, len(names))
	for i, name := range names {
		tabs[i] = appstate.Tab{Name: name, Position: i}
	}
	return tabs
}

func scenarioPanes() []appstate.Pane {
	return []appstate.Pane{
		{ID: 1, Title: "shell"},
		{ID: 2, Title: "logs"},
		{ID: 3, Title: "helper", IsPlugin: true},
	}
}

func newPaneCursor(panes []appstate.Pane) *Cursor[uint32, appstate.Pane] {
	c := NewCursor[uint32, appstate.Pane](nil, isHelperPane)
	c.SetItems(panes)
	return c
}

func newTabCursor(names ...string) *Cursor[int, appstate.Tab] {
	c := NewCursor[int, appstate.Tab](nil, nil)
	c.SetItems(newTabs(names...))
	return c
}

func requirePane(t *testing.T, c *Cursor[uint32, appstate.Pane], want uint32) {
	t.Helper()
	id, ok := c.Match()
	require.True(t, ok)
	require.Equal(t, want, id)
}

func requirePos(t *testing.T, c *Cursor[int, appstate.Tab], want int) {
	t.Helper()
	pos, ok := c.MatchIndex()
	require.True(t, ok)
	require.Equal(t, want, pos)
}

func TestRecomputeEmptyQuerySelectsFirstSelectable(t *testing.T) {
	c := newPaneCursor(scenarioPanes())
	require.True(t, c.Recompute())
	requirePane(t, c, 1)

	c.SetItems([]appstate.Pane{{ID: 9, Title: "popup", IsPlugin: true}, {ID: 4, Title: "vim"}})
	c.Recompute()
	requirePane(t, c, 4)
}

func TestRecomputeNoMatchLeavesNothingSelected(t *testing.T) {
	c := newPaneCursor(scenarioPanes())
	c.SetQuery("zzz")
	require.False(t, c.Recompute())
	_, ok := c.Match()
	require.False(t, ok)
	require.Zero(t, c.Index())
}

func TestRecomputeTieBreakKeepsFirst(t *testing.T) {
	c := NewCursor[int, appstate.Tab](constRanker{score: 5}, nil)
	c.SetItems(newTabs("one", "two", "three"))
	c.SetQuery("x")
	for i := 0; i < 3; i++ {
		c.Recompute()
		requirePos(t, c, 0)
	}
}

func TestRecomputeRejectsZeroScoreForQuery(t *testing.T) {
	c := NewCursor[int, appstate.Tab](constRanker{score: 0}, nil)
	c.SetItems(newTabs("one", "two"))
	c.SetQuery("x")
	require.False(t, c.Recompute())
	_, ok := c.MatchIndex()
	require.False(t, ok)
}

func TestRecomputeWhitespaceQuery(t *testing.T) {
	c := newTabCursor("build", "test", "deploy")
	c.SetQuery(" ")
	require.False(t, c.Recompute(), "no tab name contains a space")

	c.SetItems(newTabs("build", "my logs"))
	require.True(t, c.Recompute())
	requirePos(t, c, 1)
}

func TestRecomputePrefersHigherScore(t *testing.T) {
	c := newTabCursor("my-logs", "logs", "logsd")
	c.SetQuery("logs")
	c.Recompute()
	requirePos(t, c, 1)
}

func TestNextWrapsAndSkipsHelpers(t *testing.T) {
	c := newPaneCursor(scenarioPanes())
	c.Recompute()
	c.Next()
	requirePane(t, c, 2)
	c.Next()
	requirePane(t, c, 1)
}

func TestPrevWrapsToLast(t *testing.T) {
	c := newPaneCursor(scenarioPanes())
	c.Recompute()
	c.Prev()
	requirePane(t, c, 2)
	c.Prev()
	requirePane(t, c, 1)
}

func TestNextFromNonMatchingIndexWrapsToFirst(t *testing.T) {
	c := newTabCursor("alpha", "beta", "alps")
	c.SetQuery("al")
	c.SetIndex(1)
	c.Next()
	requirePos(t, c, 0)

	c.SetIndex(1)
	c.Prev()
	requirePos(t, c, 2)
}

func TestNavigationOnEmptyFilteredSet(t *testing.T) {
	c := newTabCursor("alpha")
	c.Recompute()
	c.SetQuery("zzz")
	require.False(t, c.Next())
	_, ok := c.Match()
	require.False(t, ok, "match cleared")

	c.Recompute()
	require.False(t, c.Prev())
}

func TestNextPrevRoundTrip(t *testing.T) {
	c := newTabCursor("a1", "b", "a2", "a3", "c")
	c.SetQuery("a")
	c.Recompute()
	start := c.Index()
	for n := 1; n <= 4; n++ {
		for i := 0; i < n; i++ {
			c.Next()
		}
		for i := 0; i < n; i++ {
			c.Prev()
		}
		require.Equal(t, start, c.Index(), "round trip of %d", n)
	}
}

func TestSeek(t *testing.T) {
	c := newTabCursor("build", "test", "deploy")
	require.True(t, c.Seek(2))
	requirePos(t, c, 2)

	c.SetQuery("te")
	require.False(t, c.Seek(0), "build does not match")
	requirePos(t, c, 2)
	require.Equal(t, 2, c.Index())

	require.False(t, c.Seek(42))
	c.Clear()
	require.False(t, c.Seek(42))
	_, ok := c.Match()
	require.False(t, ok)
}

func TestReconcileKeepsOrRecomputes(t *testing.T) {
	c := newTabCursor("build", "test", "deploy")
	c.Recompute()
	c.Next()
	c.SetItems(newTabs("build", "test", "deploy", "docs"))
	c.Reconcile()
	requirePos(t, c, 1)

	c.SetItems(newTabs("build"))
	c.Reconcile()
	requirePos(t, c, 0)
}

func TestVisibleFlagsSelection(t *testing.T) {
	c := newPaneCursor(scenarioPanes())
	rows := c.Visible()
	require.Len(t, rows, 2)
	require.False(t, rows[0].Selected)
	require.False(t, rows[1].Selected)

	c.Recompute()
	c.Next()
	rows = c.Visible()
	require.False(t, rows[0].Selected)
	require.True(t, rows[1].Selected)
	require.Equal(t, 1, rows[1].Pos)
}
