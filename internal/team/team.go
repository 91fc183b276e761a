package team

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultBaseURL is the CBS Sports MLB teams root that schedule URLs hang off.
const DefaultBaseURL = "https://www.cbssports.com/mlb/teams"

// similarityThreshold is the minimum Levenshtein similarity accepted by Resolve
// when no subsequence match exists.
const similarityThreshold = 0.7

// minFuzzyLength is the shortest query Resolve will match approximately
const minFuzzyLength = 3

// ErrUnknownTeam is returned when a query cannot be matched to any team.
var ErrUnknownTeam = errors.New("unknown team")

// Team is a single franchise record
type Team struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Slug         string `json:"slug"`
	Mascot       string `json:"mascot"`
}

// ScheduleURL returns the team's schedule page under base, in the form
// {base}/{ABBR}/{slug}/schedule/.
func (t Team) ScheduleURL(base string) string {
	if base == "" {
		base = DefaultBaseURL
	}
	return fmt.Sprintf("%s/%s/%s/schedule/", strings.TrimRight(base, "/"), strings.ToUpper(t.Abbreviation), t.Slug)
}

// String returns the display name
func (t Team) String() string {
	return t.Name
}

// Directory indexes teams by display name and by abbreviation.
type Directory struct {
	teams  []Team
	byName map[string]Team
	byAbbr map[string]Team
}

// NewDirectory builds a directory from the given records. Display names and
// abbreviations must be unique.
func NewDirectory(teams []Team) (*Directory, error) {
	d := &Directory{
		teams:  make([]Team, 0, len(teams)),
		byName: make(map[string]Team, len(teams)),
		byAbbr: make(map[string]Team, len(teams)),
	}

	for _, t := range teams {
		if t.Name == "" || t.Abbreviation == "" || t.Slug == "" {
			return nil, fmt.Errorf("incomplete team record: %+v", t)
		}
		t.Abbreviation = strings.ToUpper(t.Abbreviation)

		nameKey := strings.ToLower(t.Name)
		if _, exists := d.byName[nameKey]; exists {
			return nil, fmt.Errorf("duplicate team name: %s", t.Name)
		}
		if _, exists := d.byAbbr[t.Abbreviation]; exists {
			return nil, fmt.Errorf("duplicate team abbreviation: %s", t.Abbreviation)
		}

		d.teams = append(d.teams, t)
		d.byName[nameKey] = t
		d.byAbbr[t.Abbreviation] = t
	}

	return d, nil
}

// MLB returns a directory of all 30 MLB franchises
func MLB() *Directory {
	d, err := NewDirectory(mlbTeams)
	if err != nil {
		panic(err)
	}
	return d
}

// All returns the teams sorted by display name
func (d *Directory) All() []Team {
	out := make([]Team, len(d.teams))
	copy(out, d.teams)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Len returns the number of teams
func (d *Directory) Len() int {
	return len(d.teams)
}

// ByName looks up a team by its display name (case-insensitive)
func (d *Directory) ByName(name string) (Team, bool) {
	t, ok := d.byName[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// ByAbbreviation looks up a team by its abbreviation (case-insensitive)
func (d *Directory) ByAbbreviation(abbr string) (Team, bool) {
	t, ok := d.byAbbr[strings.ToUpper(strings.TrimSpace(abbr))]
	return t, ok
}

// FullName returns the franchise name for abbr, if known
func (d *Directory) FullName(abbr string) (string, bool) {
	t, ok := d.byAbbr[abbr]
	if !ok {
		return "", false
	}
	return t.Name, true
}

// Resolve matches free-form user input to a team. Exact display names,
// abbreviations and mascots win; otherwise the closest fuzzy match on display
// names and mascots is used. Queries shorter than three letters, and queries
// whose subsequence matches span several teams ("Sox", "New York"), fail with
// ErrUnknownTeam.
func (d *Directory) Resolve(query string) (Team, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Team{}, fmt.Errorf("%w: empty query", ErrUnknownTeam)
	}

	if t, ok := d.ByName(q); ok {
		return t, nil
	}
	if t, ok := d.ByAbbreviation(q); ok {
		return t, nil
	}
	for _, t := range d.teams {
		if strings.EqualFold(t.Mascot, q) {
			return t, nil
		}
	}

	// One or two letters match nearly every name
	if utf8.RuneCountInString(q) < minFuzzyLength {
		return Team{}, fmt.Errorf("%w: %q", ErrUnknownTeam, query)
	}

	// Subsequence match ("phillies", "nym yankees"), ranked by edit distance
	targets := make([]string, 0, len(d.teams)*2)
	owners := make([]int, 0, len(d.teams)*2)
	for i, t := range d.teams {
		targets = append(targets, t.Name, t.Mascot)
		owners = append(owners, i, i)
	}

	ranks := fuzzy.RankFindNormalizedFold(q, targets)
	if len(ranks) > 0 {
		sort.SliceStable(ranks, func(i, j int) bool {
			if ranks[i].Distance != ranks[j].Distance {
				return ranks[i].Distance < ranks[j].Distance
			}
			return ranks[i].OriginalIndex < ranks[j].OriginalIndex
		})
		owner := owners[ranks[0].OriginalIndex]
		for _, r := range ranks[1:] {
			if owners[r.OriginalIndex] != owner {
				return Team{}, fmt.Errorf("%w: %q is ambiguous (%s, %s)", ErrUnknownTeam, query,
					d.teams[owner].Name, d.teams[owners[r.OriginalIndex]].Name)
			}
		}
		return d.teams[owner], nil
	}

	// Typos ("Philies"): best Levenshtein similarity above the threshold
	best := -1
	bestScore := 0.0
	lower := strings.ToLower(q)
	for i, target := range targets {
		candidate := strings.ToLower(target)
		distance := fuzzy.LevenshteinDistance(lower, candidate)
		maxLen := float64(max(len(lower), len(candidate)))
		similarity := 1 - float64(distance)/maxLen
		if similarity >= similarityThreshold && similarity > bestScore {
			best = owners[i]
			bestScore = similarity
		}
	}
	if best >= 0 {
		return d.teams[best], nil
	}

	return Team{}, fmt.Errorf("%w: %q", ErrUnknownTeam, query)
}
