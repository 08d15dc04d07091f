package match_test

import (
	"github.com/katalvlaran/matchprob/evidence"
)

// beams returns a pointer to v, matching the evidence.Ceremony.Result field.
func beams(v int) *int { return &v }

// ceremonyFile wraps a ceremony record the way the loader would deliver it.
func ceremonyFile(week int, c evidence.Ceremony) evidence.CeremonyFile {
	return evidence.CeremonyFile{Path: "week_x.json", Week: week, Ceremony: c}
}

// boothFile wraps a truth-booth record the way the loader would deliver it.
func boothFile(man, woman string, result any) evidence.BoothFile {
	return evidence.BoothFile{
		Path:  "booth_x.json",
		Booth: evidence.Booth{Man: man, Woman: woman, Result: result},
	}
}

// identityCeremony guesses man i with woman i for all i, with the given beams.
func identityCeremony(men, women []string, correct int) evidence.CeremonyFile {
	n := len(men)
	mat := make([][]int, n)
	for i := range mat {
		mat[i] = make([]int, n)
		mat[i][i] = 1
	}

	return ceremonyFile(1, evidence.Ceremony{Men: men, Women: women, Matchups: mat, Result: beams(correct)})
}

var (
	men2   = []string{"Adam", "Ben"}
	women2 = []string{"Ana", "Bea"}

	men4   = []string{"Adam", "Ben", "Carl", "Dan"}
	women4 = []string{"Ana", "Bea", "Cleo", "Dana"}

	men6   = []string{"Adam", "Ben", "Carl", "Dan", "Eli", "Finn"}
	women6 = []string{"Ana", "Bea", "Cleo", "Dana", "Eva", "Faye"}
)
