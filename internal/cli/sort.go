package cli

import (
	"sort"
	"strings"

	"github.com/leftweet/nextgamesnippet/internal/team"
)

// SortOrder represents the available sorting options for the team list
type SortOrder string

const (
	SortByName         SortOrder = "name"
	SortByAbbreviation SortOrder = "abbr"
	SortByMascot       SortOrder = "mascot"
)

func parseSortOrder(s string) (SortOrder, bool) {
	switch order := SortOrder(strings.ToLower(strings.TrimSpace(s))); order {
	case SortByName, SortByAbbreviation, SortByMascot:
		return order, true
	default:
		return "", false
	}
}

// sortTeams sorts teams in place; ties fall back to the full name
func sortTeams(teams []team.Team, order SortOrder) {
	sort.SliceStable(teams, func(i, j int) bool {
		var a, b string
		switch order {
		case SortByAbbreviation:
			a, b = teams[i].Abbreviation, teams[j].Abbreviation
		case SortByMascot:
			a, b = strings.ToLower(teams[i].Mascot), strings.ToLower(teams[j].Mascot)
		}
		if a != b {
			return a < b
		}
		return teams[i].Name < teams[j].Name
	})
}
