package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func labels(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Label
	}
	return out
}

func TestFrameListsFilteredTabs(t *testing.T) {
	s := newScenarioSelector(-1)
	typeQuery(s, "te")
	f := s.Frame(10)
	require.Equal(t, ModeTabs, f.Mode)
	require.Equal(t, "te", f.Query)
	require.Equal(t, 2, f.Cursor)
	require.Equal(t, []string{"test"}, labels(f.Rows))
	require.True(t, f.Rows[0].Selected)
	require.False(t, f.Truncated)
	require.Equal(t, "test", f.TabLabel())
	require.Nil(t, f.Debug)
}

func TestFrameTruncatesWithinBudget(t *testing.T) {
	s := NewSelector(nil, nil)
	s.SetTabs(newTabs("a", "b", "c", "d", "e"))

	f := s.Frame(3)
	require.Equal(t, []string{"a", "b"}, labels(f.Rows))
	require.True(t, f.Truncated)
	require.Zero(t, f.Offset)
	require.Equal(t, 5, f.Total)

	for i := 0; i < 3; i++ {
		s.HandleKey(Press(KeyDown))
	}
	f = s.Frame(3)
	require.Equal(t, []string{"c", "d"}, labels(f.Rows))
	require.Equal(t, 2, f.Offset)
	require.True(t, f.Truncated)
	require.True(t, f.Rows[1].Selected)

	f = s.Frame(5)
	require.Len(t, f.Rows, 5)
	require.False(t, f.Truncated)

	f = s.Frame(0)
	require.Empty(t, f.Rows)
	require.True(t, f.Truncated)
}

func TestFramePaneModeLabels(t *testing.T) {
	s := newScenarioSelector(-1)
	s.HandleKey(Press(KeyTab))
	f := s.Frame(10)
	require.Equal(t, ModePanes, f.Mode)
	require.Equal(t, []string{"shell", "logs"}, labels(f.Rows))
	require.Equal(t, "build", f.TabLabel())
	require.Equal(t, "shell", f.PaneLabel())

	typeQuery(s, "nothing")
	f = s.Frame(10)
	require.Empty(t, f.Rows)
	require.Equal(t, NoMatch, f.PaneLabel())
}

func TestFrameDebugDump(t *testing.T) {
	s := NewSelector(nil, map[string]string{"debug": "true", "matcher": "sahilm"})
	s.SetTabs(newTabs("build", "test"))
	s.HandleKey(Char('z'))
	f := s.Frame(10)
	require.Equal(t, []Field{
		{Key: "mode", Value: "tabs"},
		{Key: "query", Value: `"z"`},
		{Key: "cursor", Value: "1"},
		{Key: "tab.index", Value: "0"},
		{Key: "tab.match", Value: "none"},
		{Key: "pane.index", Value: "0"},
		{Key: "pane.match", Value: "none"},
		{Key: "config.debug", Value: "true"},
		{Key: "config.matcher", Value: "sahilm"},
	}, f.Debug)

	s = NewSelector(nil, map[string]string{"debug": "yes"})
	require.Nil(t, s.Frame(10).Debug)
}
