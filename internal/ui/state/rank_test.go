package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFuzzysearchRankerTiers(t *testing.T) {
	r := FuzzysearchRanker{}
	exact, ok := r.Score("logs", "logs")
	require.True(t, ok)
	prefix, ok := r.Score("logserver", "logs")
	require.True(t, ok)
	substring, ok := r.Score("my-logs-view", "logs")
	require.True(t, ok)
	scattered, ok := r.Score("l-o-g-s", "logs")
	require.True(t, ok)

	require.Greater(t, exact, prefix)
	require.Greater(t, prefix, substring)
	require.Greater(t, substring, scattered)
	require.GreaterOrEqual(t, scattered, 1)

	_, ok = r.Score("build", "te")
	require.False(t, ok)
}

func TestFuzzysearchRankerIgnoresCase(t *testing.T) {
	score, ok := FuzzysearchRanker{}.Score("Deploy", "dep")
	require.True(t, ok)
	require.Positive(t, score)
}

func TestSahilmRanker(t *testing.T) {
	r := SahilmRanker{}
	score, ok := r.Score("deploy", "dpl")
	require.True(t, ok)
	require.GreaterOrEqual(t, score, 1)

	_, ok = r.Score("deploy", "xyz")
	require.False(t, ok)

	score, ok = r.Score("deploy", "")
	require.True(t, ok)
	require.Zero(t, score)
}

func TestRankerByName(t *testing.T) {
	tests := []struct {
		name string
		want Ranker
		ok   bool
	}{
		{"", FuzzysearchRanker{}, true},
		{"fuzzysearch", FuzzysearchRanker{}, true},
		{" Sahilm ", SahilmRanker{}, true},
		{"skim", nil, false},
	}
	for _, tt := range tests {
		got, ok := RankerByName(tt.name)
		require.Equal(t, tt.ok, ok, tt.name)
		require.Equal(t, tt.want, got, tt.name)
	}
	require.Equal(t, []string{"fuzzysearch", "sahilm"}, Matchers())
}

func TestRankersDoNotTrimQuery(t *testing.T) {
	for _, r := range []Ranker{FuzzysearchRanker{}, SahilmRanker{}} {
		_, ok := r.Score("deploy", " ")
		require.False(t, ok, "%T", r)

		score, ok := r.Score("go test", " ")
		if ok {
			require.GreaterOrEqual(t, score, 1, "%T", r)
		}
	}
}
