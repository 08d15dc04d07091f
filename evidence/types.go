package evidence

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyFile indicates an evidence file with no content after
	// BOM/whitespace stripping.
	ErrEmptyFile = errors.New("evidence: file is empty")
	// ErrUnknownVerdict indicates a truth-booth result outside the accepted
	// literal spellings.
	ErrUnknownVerdict = errors.New("evidence: unrecognized truth booth result")
	// ErrMissingResult indicates a ceremony record without a "result" field.
	ErrMissingResult = errors.New("evidence: ceremony missing 'result'")
)

// Verdict is a normalized truth-booth outcome.
type Verdict int

const (
	// NoMatch states the queried pair is not part of the true matching.
	NoMatch Verdict = iota
	// Match states the queried pair is part of the true matching.
	Match
)

// String returns the canonical spelling of the verdict.
func (v Verdict) String() string {
	if v == Match {
		return "match"
	}

	return "no match"
}

// ParseVerdict normalizes a raw JSON truth-booth result. Accepted spellings
// (case-insensitive): match/true/yes/1 and "no match"/nomatch/false/no/0;
// JSON booleans and numbers are accepted too (0 ⇒ no match, else match).
// Anything else fails with ErrUnknownVerdict.
func ParseVerdict(raw any) (Verdict, error) {
	switch val := raw.(type) {
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "match", "true", "yes", "1":
			return Match, nil
		case "no match", "nomatch", "false", "no", "0":
			return NoMatch, nil
		}
	case bool:
		if val {
			return Match, nil
		}

		return NoMatch, nil
	case float64: // encoding/json decodes untyped numbers as float64
		if val != 0 {
			return Match, nil
		}

		return NoMatch, nil
	case int:
		if val != 0 {
			return Match, nil
		}

		return NoMatch, nil
	}

	return NoMatch, fmt.Errorf("%w: %v", ErrUnknownVerdict, raw)
}

// Pair is one named guess inside a ceremony's "matches" list.
type Pair struct {
	Man   string `json:"man"`
	Woman string `json:"woman"`
}

// Ceremony is one matching round as stored on disk. Exactly one of Matchups
// (an n×n 0/1 matrix over the explicit rosters) or Matches (named pairs)
// carries the guessed pairing; Result is the exact number of correct guesses.
type Ceremony struct {
	Men      []string `json:"men,omitempty"`
	Women    []string `json:"women,omitempty"`
	Matchups [][]int  `json:"matchups,omitempty"`
	Matches  []Pair   `json:"matches,omitempty"`
	Result   *int     `json:"result"`
}

// Roster returns the ceremony's explicit rosters, or — when none are present
// and inferFromMatches is set — rosters inferred from the Matches list in
// order of first appearance. Returns (nil, nil) when neither source applies.
func (c Ceremony) Roster(inferFromMatches bool) (men, women []string) {
	if len(c.Men) > 0 && len(c.Women) > 0 {
		return c.Men, c.Women
	}
	if !inferFromMatches || len(c.Matches) == 0 {
		return nil, nil
	}

	seenMen := make(map[string]bool, len(c.Matches))
	seenWomen := make(map[string]bool, len(c.Matches))
	for _, p := range c.Matches {
		man := strings.TrimSpace(p.Man)
		woman := strings.TrimSpace(p.Woman)
		if man != "" && !seenMen[man] {
			seenMen[man] = true
			men = append(men, man)
		}
		if woman != "" && !seenWomen[woman] {
			seenWomen[woman] = true
			women = append(women, woman)
		}
	}
	if len(men) == 0 || len(women) == 0 {
		return nil, nil
	}

	return men, women
}

// Booth is one truth-booth record as stored on disk. Result is kept raw;
// ParseVerdict normalizes it.
type Booth struct {
	Man    string `json:"man"`
	Woman  string `json:"woman"`
	Result any    `json:"result"`
}
