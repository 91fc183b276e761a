package game

import (
	"testing"

	"github.com/leftweet/nextgamesnippet/internal/team"
)

var phillies = team.Team{
	Name:         "Philadelphia Phillies",
	Abbreviation: "PHI",
	Slug:         "philadelphia-phillies",
	Mascot:       "Phillies",
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Tue, Jul 4", "July 4"},
		{"Jul 4", "July 4"},
		{"Wed, Jul 04", "July 4"},
		{"Sat, Sep 28 Doubleheader", "September 28"},
		{"  Mon, Apr 1  ", "April 1"},
		{"July 4", "July 4"},
		{"Postponed", "Postponed"},
		{"Tue, Someday", "Tue, Someday"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizeDate(tt.raw); got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestResolveOpponent(t *testing.T) {
	dir := team.MLB()

	tests := []struct {
		raw          string
		wantName     string
		wantRelation Relation
	}{
		{"@ NYM", "New York Mets", Away},
		{"vs BOS", "Boston Red Sox", Home},
		{"vs. ATL", "Atlanta Braves", Home},
		{"@SD", "San Diego Padres", Away},
		{"TOR", "Toronto Blue Jays", Home},
		{"vs. Team Canada", "Team Canada", Home},
		{"@ XYZ", "XYZ", Away},
		{"N/A", "N/A", Home},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ResolveOpponent(tt.raw, dir); got != tt.wantName {
				t.Errorf("ResolveOpponent(%q) = %q, want %q", tt.raw, got, tt.wantName)
			}
			if got := RelationOf(tt.raw); got != tt.wantRelation {
				t.Errorf("RelationOf(%q) = %s, want %s", tt.raw, got, tt.wantRelation)
			}
		})
	}
}

func TestParseTimeAndTV(t *testing.T) {
	tests := []struct {
		raw      string
		wantTime string
		wantTV   string
	}{
		{"7:05 pm ET / ATV", "7:05 p.m. ET", "Apple TV"},
		{"TBD", "TBD", "Not specified"},
		{"tbd", "TBD", "Not specified"},
		{"1:10 PM ET / MLBN", "1:10 p.m. ET", "MLB Network"},
		{"12:35 p.m. ET / AMZN", "12:35 p.m. ET", "Amazon"},
		{"11:05a ET ESPN", "11:05 a.m. ET", "ESPN"},
		{"6:40 pm ET FS1", "6:40 p.m. ET", "FS1"},
		{"7:05 pm ET", "7:05 p.m. ET", "Not specified"},
		{"TBD / ESPN", "TBD", "ESPN"},
		{"7:10 pm ET / NBCS-PH / ATV", "7:10 p.m. ET", "Apple TV"},
		{"Postponed", "TBD", "Postponed"},
		{"N/A", "TBD", "Not specified"},
		{"", "TBD", "Not specified"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			gotTime := ParseTime(tt.raw)
			if gotTime != tt.wantTime {
				t.Errorf("ParseTime(%q) = %q, want %q", tt.raw, gotTime, tt.wantTime)
			}
			if got := ResolveTV(tt.raw, gotTime); got != tt.wantTV {
				t.Errorf("ResolveTV(%q) = %q, want %q", tt.raw, got, tt.wantTV)
			}
		})
	}
}

func TestNormalizer_Normalize(t *testing.T) {
	n := NewNormalizer(team.MLB())

	tests := []struct {
		name string
		raw  RawRow
		want Game
	}{
		{
			name: "away game",
			raw: RawRow{
				Date:        "Wed, Jul 4",
				Opponent:    "@ NYM",
				TimeTV:      "7:05 pm ET / ATV",
				Venue:       "Citi Field",
				HomeStarter: "Jacob Degrom (3-2, 2.45)",
				AwayStarter: "",
			},
			want: Game{
				Date:            "July 4",
				TeamMascot:      "Phillies",
				Opponent:        "New York Mets",
				Relation:        Away,
				Time:            "7:05 p.m. ET",
				TV:              "Apple TV",
				Venue:           "Citi Field",
				TeamStarter:     "Starter TBD",
				OpponentStarter: "Jacob Degrom (3-2, 2.45)",
			},
		},
		{
			name: "home game with placeholders",
			raw: RawRow{
				Date:        "Fri, Aug 9",
				Opponent:    "vs. BOS",
				TimeTV:      "TBD",
				Venue:       "TBD",
				HomeStarter: "Zack Wheeler (10-4, 2.71)",
				AwayStarter: "TBD",
			},
			want: Game{
				Date:            "August 9",
				TeamMascot:      "Phillies",
				Opponent:        "Boston Red Sox",
				Relation:        Home,
				Time:            "TBD",
				TV:              "Not specified",
				Venue:           "Venue TBD",
				TeamStarter:     "Zack Wheeler (10-4, 2.71)",
				OpponentStarter: "Starter TBD",
			},
		},
		{
			name: "all sentinels",
			raw:  NewRawRow("Philadelphia Phillies"),
			want: Game{
				Date:            "N/A",
				TeamMascot:      "Phillies",
				Opponent:        "N/A",
				Relation:        Home,
				Time:            "TBD",
				TV:              "Not specified",
				Venue:           "Venue TBD",
				TeamStarter:     "Starter TBD",
				OpponentStarter: "Starter TBD",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.raw, phillies)
			if got != tt.want {
				t.Errorf("Normalize() =\n%+v\nwant\n%+v", got, tt.want)
			}
		})
	}
}

func TestNormalizer_Idempotent(t *testing.T) {
	n := NewNormalizer(team.MLB())
	raw := RawRow{
		Date:        "Tue, Jul 4",
		Opponent:    "vs BOS",
		TimeTV:      "1:05 pm ET / MLBN",
		Venue:       "Citizens Bank Park",
		HomeStarter: "Aaron Nola (8-6, 3.40)",
		AwayStarter: "Brayan Bello",
	}

	first := n.Normalize(raw, phillies)
	second := n.Normalize(raw, phillies)
	if first != second {
		t.Errorf("Normalize() not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestGame_Matchup(t *testing.T) {
	home := Game{TeamMascot: "Phillies", Opponent: "Boston Red Sox", Relation: Home}
	if got := home.Matchup(); got != "Phillies vs. Boston Red Sox" {
		t.Errorf("Matchup() = %q", got)
	}
	away := Game{TeamMascot: "Phillies", Opponent: "New York Mets", Relation: Away}
	if got := away.Matchup(); got != "Phillies @ New York Mets" {
		t.Errorf("Matchup() = %q", got)
	}
}
