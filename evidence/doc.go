// Package evidence defines the raw input records of the matchprob pipeline
// and loads them from disk.
//
// Two record kinds exist:
//
//   - Ceremony — one matching round: a full guessed pairing (either an n×n
//     0/1 "matchups" matrix or a named "matches" list), optional explicit
//     rosters, and the exact number of correct guesses ("result", the beams).
//   - Booth — one truth-booth query: a single man/woman pair and a verdict
//     stating whether the pair belongs to the true matching.
//
// Files are plain JSON, optionally with // and /* */ comments when loading
// with AllowComments. Ceremony files match week_*.json, booth files match
// booth_*.json; both are ordered by the natural key of the filename so that
// week_2 sorts before week_10, and the first digit run in a filename is its
// week index (used by the as-of-week snapshot filters).
//
// The package performs no constraint checking beyond JSON shape; building and
// validating the constraint model is the match package's job.
package evidence
