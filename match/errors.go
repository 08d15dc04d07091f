package match

import "errors"

var (
	// ErrNoRoster indicates no evidence at all from which to establish rosters.
	ErrNoRoster = errors.New("match: no evidence to establish a roster")
	// ErrRosterShape indicates rosters of unequal or zero length.
	ErrRosterShape = errors.New("match: rosters must be non-empty and of equal length")
	// ErrRosterMismatch indicates a later ceremony declaring rosters that
	// differ from the established ones.
	ErrRosterMismatch = errors.New("match: ceremony rosters differ from earlier evidence")
	// ErrRosterTooLarge indicates a roster beyond the supported universe width.
	ErrRosterTooLarge = errors.New("match: roster exceeds 64 names")
	// ErrDuplicateName indicates a repeated name within one roster.
	ErrDuplicateName = errors.New("match: duplicate name in roster")

	// ErrMatrixShape indicates a guess matrix that is not n×n.
	ErrMatrixShape = errors.New("match: ceremony matchups must be n×n")
	// ErrMatrixValue indicates a guess matrix cell outside {0, 1}.
	ErrMatrixValue = errors.New("match: ceremony matchups must be 0/1")
	// ErrMissingGuesses indicates a ceremony with neither a matchups matrix
	// nor a matches list.
	ErrMissingGuesses = errors.New("match: ceremony must contain 'matchups' or 'matches'")
	// ErrBeamsRange indicates a required-correct count outside [0, n].
	ErrBeamsRange = errors.New("match: ceremony result outside [0, n]")

	// ErrUnknownName indicates evidence referencing a name outside the roster.
	ErrUnknownName = errors.New("match: unknown name")

	// ErrForcedConflict indicates two truth-booth matches forcing one man to
	// different women.
	ErrForcedConflict = errors.New("match: conflicting forced pairs for one man")
	// ErrForcedExcluded indicates a forced pair contradicting a no-match.
	ErrForcedExcluded = errors.New("match: forced pair contradicts a no-match")
	// ErrForcedDuplicate indicates two forced pairs targeting one woman.
	ErrForcedDuplicate = errors.New("match: two forced pairs target the same woman")
	// ErrNoCandidates indicates a man whose candidate domain emptied.
	ErrNoCandidates = errors.New("match: no remaining candidates")

	// ErrNilProblem indicates Enumerate received a nil Problem.
	ErrNilProblem = errors.New("match: nil problem")
)
