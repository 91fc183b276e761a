package game

import (
	"strings"

	"github.com/leftweet/nextgamesnippet/internal/team"
)

// Normalizer converts scraped rows into games. It only reads the directory,
// so one Normalizer can serve every request.
type Normalizer struct {
	names FullNamer
}

// NewNormalizer creates a Normalizer resolving opponents through names
func NewNormalizer(names FullNamer) *Normalizer {
	return &Normalizer{names: names}
}

// Normalize builds the Game for t from raw. It never fails: fields that cannot
// be interpreted are passed through or replaced by a placeholder.
func (n *Normalizer) Normalize(raw RawRow, t team.Team) Game {
	relation := RelationOf(raw.Opponent)
	parsedTime := ParseTime(raw.TimeTV)

	g := Game{
		Date:       NormalizeDate(raw.Date),
		TeamMascot: t.Mascot,
		Opponent:   ResolveOpponent(raw.Opponent, n.names),
		Relation:   relation,
		Time:       parsedTime,
		TV:         ResolveTV(raw.TimeTV, parsedTime),
		Venue:      orPlaceholder(raw.Venue, VenueTBD),
	}

	home := orPlaceholder(raw.HomeStarter, StarterTBD)
	away := orPlaceholder(raw.AwayStarter, StarterTBD)
	if relation == Home {
		g.TeamStarter, g.OpponentStarter = home, away
	} else {
		g.TeamStarter, g.OpponentStarter = away, home
	}

	return g
}

// orPlaceholder substitutes placeholder for empty, "TBD" and "N/A" values
func orPlaceholder(value, placeholder string) string {
	switch strings.TrimSpace(value) {
	case "", TBD, NotAvailable:
		return placeholder
	}
	return value
}
