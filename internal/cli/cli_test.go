package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matchprob/internal/cli"
	"github.com/katalvlaran/matchprob/match"
)

// fixture lays out a two-couple evidence tree: week 1 pins the identity
// pairing via a full-beam matrix ceremony, week 2 restates it in matches
// form, and a week-2 booth confirms one pair.
func fixture(t *testing.T) (ceremonyDir, boothDir, outDir string) {
	t.Helper()
	root := t.TempDir()
	ceremonyDir = filepath.Join(root, "ceremony_data")
	boothDir = filepath.Join(root, "truth_booth_data")
	outDir = filepath.Join(root, "out")
	for _, dir := range []string{ceremonyDir, boothDir, outDir} {
		require.NoError(t, os.MkdirAll(dir, 0o755))
	}

	write := func(dir, name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write(ceremonyDir, "week_1.json",
		`{"men":["Adam","Ben"],"women":["Ana","Bea"],"matchups":[[1,0],[0,1]],"result":2}`)
	write(ceremonyDir, "week_2.json",
		`{"matches":[{"man":"Adam","woman":"Ana"},{"man":"Ben","woman":"Bea"}],"result":2}`)
	write(boothDir, "booth_2.json",
		`{"man":"Adam","woman":"Ana","result":"match"}`)

	return ceremonyDir, boothDir, outDir
}

// run executes the CLI in-process.
func run(t *testing.T, args ...string) error {
	t.Helper()
	root := cli.NewRoot()
	root.SetArgs(args)

	return root.Execute()
}

// TestCompute_EndToEnd runs the root command over the fixture and checks the
// written report: the evidence pins the identity pairing exactly.
func TestCompute_EndToEnd(t *testing.T) {
	ceremonyDir, boothDir, outDir := fixture(t)
	out := filepath.Join(outDir, "data.json")

	require.NoError(t, run(t,
		"--ceremony-dir", ceremonyDir,
		"--truth-booth-dir", boothDir,
		"--output", out,
	))

	report, err := match.ReadOutput(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"Adam", "Ben"}, report.Men)
	assert.Equal(t, []string{"Ana", "Bea"}, report.Women)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, report.Probabilities)
}

// TestSplitWeeks_EndToEnd checks one report per week with week 0 holding only
// truth-booth knowledge — which, before any booth, is the uniform matrix.
func TestSplitWeeks_EndToEnd(t *testing.T) {
	ceremonyDir, boothDir, outDir := fixture(t)
	out := filepath.Join(outDir, "data.json")

	require.NoError(t, run(t,
		"split-weeks",
		"--ceremony-dir", ceremonyDir,
		"--truth-booth-dir", boothDir,
		"--output", out,
	))

	week0, err := match.ReadOutput(filepath.Join(outDir, "data_week_0.json"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}}, week0.Probabilities)

	week1, err := match.ReadOutput(filepath.Join(outDir, "data_week_1.json"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, week1.Probabilities)

	week2, err := match.ReadOutput(filepath.Join(outDir, "data_week_2.json"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, week2.Probabilities)
}

// TestWeek_OutOfRange rejects a snapshot beyond the last ceremony week and
// names the available range.
func TestWeek_OutOfRange(t *testing.T) {
	ceremonyDir, boothDir, outDir := fixture(t)

	err := run(t,
		"week", "7",
		"--ceremony-dir", ceremonyDir,
		"--truth-booth-dir", boothDir,
		"--output", filepath.Join(outDir, "data.json"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max available week 2")
	assert.Contains(t, err.Error(), "1, 2")
}

// TestWeek_BeforeFirstCeremony keeps the full roster when a requested week
// precedes every ceremony file: the snapshot then carries only truth-booth
// knowledge, never a roster inferred from whichever names the booths mention.
func TestWeek_BeforeFirstCeremony(t *testing.T) {
	root := t.TempDir()
	ceremonyDir := filepath.Join(root, "ceremony_data")
	boothDir := filepath.Join(root, "truth_booth_data")
	require.NoError(t, os.MkdirAll(ceremonyDir, 0o755))
	require.NoError(t, os.MkdirAll(boothDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(ceremonyDir, "week_3.json"),
		[]byte(`{"men":["Adam","Ben"],"women":["Ana","Bea"],"matchups":[[1,0],[0,1]],"result":2}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(boothDir, "booth_1.json"),
		[]byte(`{"man":"Adam","woman":"Ana","result":"match"}`), 0o644))
	out := filepath.Join(root, "data.json")

	require.NoError(t, run(t,
		"week", "1",
		"--ceremony-dir", ceremonyDir,
		"--truth-booth-dir", boothDir,
		"--output", out,
	))

	report, err := match.ReadOutput(filepath.Join(root, "data_week_1.json"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Adam", "Ben"}, report.Men)
	assert.Equal(t, []string{"Ana", "Bea"}, report.Women)
	// The booth fixes Adam–Ana, which for n = 2 fixes Ben–Bea as well.
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, report.Probabilities)
}

// TestCompute_Infeasible writes the all-zero report without failing: no
// consistent matching is a result, not an input defect.
func TestCompute_Infeasible(t *testing.T) {
	ceremonyDir, boothDir, outDir := fixture(t)
	// The identity guess with one beam is unsatisfiable for n = 2.
	require.NoError(t, os.WriteFile(filepath.Join(ceremonyDir, "week_3.json"),
		[]byte(`{"men":["Adam","Ben"],"women":["Ana","Bea"],"matchups":[[1,0],[0,1]],"result":1}`), 0o644))
	out := filepath.Join(outDir, "data.json")

	require.NoError(t, run(t,
		"--ceremony-dir", ceremonyDir,
		"--truth-booth-dir", boothDir,
		"--output", out,
	))

	report, err := match.ReadOutput(out)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}, {0, 0}}, report.Probabilities)
}

// TestCompute_BadEvidence exits with the builder's contradiction.
func TestCompute_BadEvidence(t *testing.T) {
	ceremonyDir, boothDir, outDir := fixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(boothDir, "booth_3.json"),
		[]byte(`{"man":"Adam","woman":"Bea","result":"match"}`), 0o644))

	err := run(t,
		"--ceremony-dir", ceremonyDir,
		"--truth-booth-dir", boothDir,
		"--output", filepath.Join(outDir, "data.json"),
	)
	assert.ErrorIs(t, err, match.ErrForcedConflict)
}
