package evidence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// NoWeek marks a filename without an embedded week index. Such files sort
// after numbered ones and are excluded by UpToWeek filters.
const NoWeek = -1

// LoadOptions tunes evidence file reading.
type LoadOptions struct {
	// AllowComments strips // line comments and /* */ block comments from
	// each file before JSON decoding.
	AllowComments bool
}

// CeremonyFile is one loaded ceremony record with its provenance.
type CeremonyFile struct {
	Path     string
	Week     int
	Ceremony Ceremony
}

// BoothFile is one loaded truth-booth record with its provenance.
type BoothFile struct {
	Path  string
	Week  int
	Booth Booth
}

var (
	ceremonyPattern = regexp.MustCompile(`(?i)^week_.*\.json$`)
	boothPattern    = regexp.MustCompile(`(?i)^booth_.*\.json$`)

	lineComment  = regexp.MustCompile(`//[^\n\r]*`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	digitRun     = regexp.MustCompile(`\d+`)
)

// Week extracts the first digit run of the path's basename, or NoWeek when
// the basename carries no number.
func Week(path string) int {
	m := digitRun.FindString(filepath.Base(path))
	if m == "" {
		return NoWeek
	}
	w, err := strconv.Atoi(m)
	if err != nil {
		return NoWeek // digit run too long for int; treat as un-numbered
	}

	return w
}

// LoadCeremonies reads every week_*.json file in dir, sorted by the natural
// key of the filename. A missing directory yields an empty slice, not an
// error, matching the degenerate-input contract (booths alone may still
// define a roster).
func LoadCeremonies(dir string, opts LoadOptions) ([]CeremonyFile, error) {
	paths, err := listSorted(dir, ceremonyPattern)
	if err != nil {
		return nil, err
	}

	out := make([]CeremonyFile, 0, len(paths))
	for _, path := range paths {
		var c Ceremony
		if err = readJSON(path, opts, &c); err != nil {
			return nil, err
		}
		out = append(out, CeremonyFile{Path: path, Week: Week(path), Ceremony: c})
	}

	return out, nil
}

// LoadBooths reads every booth_*.json file in dir, sorted by the natural key
// of the filename. A missing directory yields an empty slice.
func LoadBooths(dir string, opts LoadOptions) ([]BoothFile, error) {
	paths, err := listSorted(dir, boothPattern)
	if err != nil {
		return nil, err
	}

	out := make([]BoothFile, 0, len(paths))
	for _, path := range paths {
		var b Booth
		if err = readJSON(path, opts, &b); err != nil {
			return nil, err
		}
		out = append(out, BoothFile{Path: path, Week: Week(path), Booth: b})
	}

	return out, nil
}

// CeremoniesUpTo keeps the files whose week index is ≤ week. Un-numbered
// files (NoWeek) are always dropped.
func CeremoniesUpTo(files []CeremonyFile, week int) []CeremonyFile {
	out := make([]CeremonyFile, 0, len(files))
	for _, f := range files {
		if f.Week != NoWeek && f.Week <= week {
			out = append(out, f)
		}
	}

	return out
}

// BoothsUpTo keeps the files whose week index is ≤ week.
func BoothsUpTo(files []BoothFile, week int) []BoothFile {
	out := make([]BoothFile, 0, len(files))
	for _, f := range files {
		if f.Week != NoWeek && f.Week <= week {
			out = append(out, f)
		}
	}

	return out
}

// MaxWeek returns the largest week index among the files, or NoWeek when no
// file carries one.
func MaxWeek(files []CeremonyFile) int {
	maxW := NoWeek
	for _, f := range files {
		if f.Week != NoWeek && f.Week > maxW {
			maxW = f.Week
		}
	}

	return maxW
}

// listSorted lists dir entries matching pattern, sorted by natural filename
// key (digit runs compare numerically, text case-insensitively).
func listSorted(dir string, pattern *regexp.Regexp) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("evidence: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && pattern.MatchString(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Slice(names, func(i, j int) bool { return naturalLess(names[i], names[j]) })

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}

	return paths, nil
}

// readJSON reads one evidence file: BOM/whitespace stripped, optionally
// de-commented, then JSON-decoded into dst. Failures carry the path.
func readJSON(path string, opts LoadOptions, dst any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("evidence: %w", err)
	}
	text := strings.TrimSpace(strings.TrimPrefix(string(raw), "\uFEFF"))
	if text == "" {
		return fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	if opts.AllowComments {
		text = blockComment.ReplaceAllString(lineComment.ReplaceAllString(text, ""), "")
	}
	if err = json.Unmarshal([]byte(text), dst); err != nil {
		return fmt.Errorf("evidence: invalid JSON in %s: %w", path, err)
	}

	return nil
}

// naturalLess orders strings by alternating text/digit runs, comparing digit
// runs numerically so week_2 < week_10.
func naturalLess(a, b string) bool {
	ra, rb := splitRuns(strings.ToLower(a)), splitRuns(strings.ToLower(b))
	for i := 0; i < len(ra) && i < len(rb); i++ {
		sa, sb := ra[i], rb[i]
		if sa == sb {
			continue
		}
		na, ea := strconv.Atoi(sa)
		nb, eb := strconv.Atoi(sb)
		if ea == nil && eb == nil {
			if na != nb {
				return na < nb
			}
			continue
		}

		return sa < sb
	}

	return len(ra) < len(rb)
}

// splitRuns cuts a string into maximal digit and non-digit runs.
func splitRuns(s string) []string {
	var runs []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || isDigit(s[i]) != isDigit(s[i-1]) {
			runs = append(runs, s[start:i])
			start = i
		}
	}

	return runs
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
