package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matchprob/evidence"
	"github.com/katalvlaran/matchprob/match"
)

// TestBuild_NoEvidence verifies that with neither ceremonies nor booths there
// is no roster to report on.
func TestBuild_NoEvidence(t *testing.T) {
	_, err := match.Build(nil, nil)
	assert.ErrorIs(t, err, match.ErrNoRoster)
}

// TestBuild_RosterFromBooths establishes the roster from booth names in order
// of first appearance when no ceremony exists.
func TestBuild_RosterFromBooths(t *testing.T) {
	p, err := match.Build(nil, []evidence.BoothFile{
		boothFile("Adam", "Ana", "no match"),
		boothFile("Ben", "Bea", "no match"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Adam", "Ben"}, p.Men())
	assert.Equal(t, []string{"Ana", "Bea"}, p.Women())
	assert.Equal(t, 0, p.Rounds())
}

// TestBuild_RosterFromMatches infers the roster from a matches list when the
// first ceremony declares no explicit arrays.
func TestBuild_RosterFromMatches(t *testing.T) {
	p, err := match.Build([]evidence.CeremonyFile{
		ceremonyFile(1, evidence.Ceremony{
			Matches: []evidence.Pair{
				{Man: "Adam", Woman: "Bea"},
				{Man: "Ben", Woman: "Ana"},
			},
			Result: beams(1),
		}),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Adam", "Ben"}, p.Men())
	assert.Equal(t, []string{"Bea", "Ana"}, p.Women(), "women follow first appearance, not man order")
}

// TestBuild_RosterMismatch rejects a later ceremony whose explicit rosters
// differ from the established ones.
func TestBuild_RosterMismatch(t *testing.T) {
	_, err := match.Build([]evidence.CeremonyFile{
		identityCeremony(men2, women2, 1),
		identityCeremony(men2, []string{"Ana", "Zoe"}, 1),
	}, nil)
	assert.ErrorIs(t, err, match.ErrRosterMismatch)
}

// TestBuild_StructuralErrors tables the shape-level failures of §7(a).
func TestBuild_StructuralErrors(t *testing.T) {
	cases := []struct {
		name     string
		ceremony evidence.Ceremony
		want     error
	}{
		{
			name:     "matrix not n×n",
			ceremony: evidence.Ceremony{Men: men2, Women: women2, Matchups: [][]int{{1, 0}}, Result: beams(1)},
			want:     match.ErrMatrixShape,
		},
		{
			name:     "ragged row",
			ceremony: evidence.Ceremony{Men: men2, Women: women2, Matchups: [][]int{{1, 0}, {0}}, Result: beams(1)},
			want:     match.ErrMatrixShape,
		},
		{
			name:     "non-binary cell",
			ceremony: evidence.Ceremony{Men: men2, Women: women2, Matchups: [][]int{{2, 0}, {0, 1}}, Result: beams(1)},
			want:     match.ErrMatrixValue,
		},
		{
			name:     "missing guesses",
			ceremony: evidence.Ceremony{Men: men2, Women: women2, Result: beams(1)},
			want:     match.ErrMissingGuesses,
		},
		{
			name:     "missing result",
			ceremony: evidence.Ceremony{Men: men2, Women: women2, Matchups: [][]int{{1, 0}, {0, 1}}},
			want:     evidence.ErrMissingResult,
		},
		{
			name:     "beams above n",
			ceremony: evidence.Ceremony{Men: men2, Women: women2, Matchups: [][]int{{1, 0}, {0, 1}}, Result: beams(3)},
			want:     match.ErrBeamsRange,
		},
		{
			name:     "negative beams",
			ceremony: evidence.Ceremony{Men: men2, Women: women2, Matchups: [][]int{{1, 0}, {0, 1}}, Result: beams(-1)},
			want:     match.ErrBeamsRange,
		},
		{
			name:     "unequal rosters",
			ceremony: evidence.Ceremony{Men: men2, Women: []string{"Ana"}, Matchups: [][]int{{1}, {1}}, Result: beams(1)},
			want:     match.ErrRosterShape,
		},
		{
			name:     "duplicate name",
			ceremony: evidence.Ceremony{Men: []string{"Adam", "Adam"}, Women: women2, Matchups: [][]int{{1, 0}, {0, 1}}, Result: beams(1)},
			want:     match.ErrDuplicateName,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := match.Build([]evidence.CeremonyFile{ceremonyFile(1, tc.ceremony)}, nil)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestBuild_UnknownName covers referential failures for both evidence kinds.
func TestBuild_UnknownName(t *testing.T) {
	base := identityCeremony(men2, women2, 1)

	_, err := match.Build([]evidence.CeremonyFile{base},
		[]evidence.BoothFile{boothFile("Zed", "Ana", "match")})
	assert.ErrorIs(t, err, match.ErrUnknownName, "unknown booth man")

	_, err = match.Build([]evidence.CeremonyFile{
		base,
		ceremonyFile(2, evidence.Ceremony{
			Matches: []evidence.Pair{{Man: "Adam", Woman: "Zoe"}},
			Result:  beams(0),
		}),
	}, nil)
	assert.ErrorIs(t, err, match.ErrUnknownName, "unknown pair woman")
}

// TestBuild_UnknownVerdict surfaces the evidence-level verdict sentinel.
func TestBuild_UnknownVerdict(t *testing.T) {
	_, err := match.Build([]evidence.CeremonyFile{identityCeremony(men2, women2, 1)},
		[]evidence.BoothFile{boothFile("Adam", "Ana", "perhaps")})
	assert.ErrorIs(t, err, evidence.ErrUnknownVerdict)
}

// TestBuild_Contradictions tables the §7(c) contradiction failures.
func TestBuild_Contradictions(t *testing.T) {
	base := identityCeremony(men4, women4, 2)

	cases := []struct {
		name   string
		booths []evidence.BoothFile
		want   error
	}{
		{
			name: "conflicting forced pairs for one man",
			booths: []evidence.BoothFile{
				boothFile("Adam", "Ana", "match"),
				boothFile("Adam", "Bea", "match"),
			},
			want: match.ErrForcedConflict,
		},
		{
			name: "forced pair contradicts a no-match",
			booths: []evidence.BoothFile{
				boothFile("Adam", "Ana", "no match"),
				boothFile("Adam", "Ana", "match"),
			},
			want: match.ErrForcedExcluded,
		},
		{
			name: "two forced pairs target one woman",
			booths: []evidence.BoothFile{
				boothFile("Adam", "Ana", "match"),
				boothFile("Ben", "Ana", "match"),
			},
			want: match.ErrForcedDuplicate,
		},
		{
			name: "domain emptied",
			booths: []evidence.BoothFile{
				boothFile("Adam", "Ana", "no match"),
				boothFile("Adam", "Bea", "no match"),
				boothFile("Adam", "Cleo", "no match"),
				boothFile("Adam", "Dana", "no match"),
			},
			want: match.ErrNoCandidates,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := match.Build([]evidence.CeremonyFile{base}, tc.booths)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestBuild_RepeatedIdenticalMatch allows the same booth match twice; only a
// different target conflicts.
func TestBuild_RepeatedIdenticalMatch(t *testing.T) {
	p, err := match.Build([]evidence.CeremonyFile{identityCeremony(men2, women2, 1)},
		[]evidence.BoothFile{
			boothFile("Adam", "Ana", "match"),
			boothFile("Adam", "Ana", "yes"),
		})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 0}, p.Forced())
}

// TestBuild_VerdictSpellings accepts every documented literal, including
// booleans and numbers decoded from JSON.
func TestBuild_VerdictSpellings(t *testing.T) {
	matches := []any{"match", "TRUE", "Yes", "1", true, float64(1), 1}
	noMatches := []any{"no match", "NoMatch", "false", "No", "0", false, float64(0), 0}

	for _, raw := range matches {
		v, err := evidence.ParseVerdict(raw)
		require.NoError(t, err, "raw=%v", raw)
		assert.Equal(t, evidence.Match, v, "raw=%v", raw)
	}
	for _, raw := range noMatches {
		v, err := evidence.ParseVerdict(raw)
		require.NoError(t, err, "raw=%v", raw)
		assert.Equal(t, evidence.NoMatch, v, "raw=%v", raw)
	}

	_, err := evidence.ParseVerdict(nil)
	assert.ErrorIs(t, err, evidence.ErrUnknownVerdict)
	_, err = evidence.ParseVerdict("maybe")
	assert.ErrorIs(t, err, evidence.ErrUnknownVerdict)
}

// TestBuild_TooManyNames rejects rosters beyond the 64-wide domain universe.
func TestBuild_TooManyNames(t *testing.T) {
	var booths []evidence.BoothFile
	for i := 0; i < 65; i++ {
		booths = append(booths, boothFile(name("M", i), name("W", i), "no match"))
	}
	_, err := match.Build(nil, booths)
	assert.ErrorIs(t, err, match.ErrRosterTooLarge)
}

func name(prefix string, i int) string {
	return prefix + string(rune('A'+i/26)) + string(rune('A'+i%26))
}
