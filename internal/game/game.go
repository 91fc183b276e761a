package game

// NotAvailable is the sentinel used for cells missing from a scraped row
const NotAvailable = "N/A"

// Placeholders substituted for unknown values
const (
	TBD          = "TBD"
	VenueTBD     = "Venue TBD"
	StarterTBD   = "Starter TBD"
	NotSpecified = "Not specified"
)

// Relation says whether the selected team plays at home or away
type Relation string

const (
	Home Relation = "HOME"
	Away Relation = "AWAY"
)

// RawRow is the first schedule row as scraped, one field per column
type RawRow struct {
	Date        string `json:"date"`
	Opponent    string `json:"opponent"`
	TimeTV      string `json:"time_tv"`
	Venue       string `json:"venue"`
	HomeStarter string `json:"home_starter"`
	AwayStarter string `json:"away_starter"`
	ScrapedFor  string `json:"scraped_for"`
}

// NewRawRow returns a row with every field set to NotAvailable
func NewRawRow(scrapedFor string) RawRow {
	return RawRow{
		Date:        NotAvailable,
		Opponent:    NotAvailable,
		TimeTV:      NotAvailable,
		Venue:       NotAvailable,
		HomeStarter: NotAvailable,
		AwayStarter: NotAvailable,
		ScrapedFor:  scrapedFor,
	}
}

// Game is the normalized next game from the selected team's point of view
type Game struct {
	Date            string   `json:"date"`
	TeamMascot      string   `json:"team_mascot"`
	Opponent        string   `json:"opponent"`
	Relation        Relation `json:"relation"`
	Time            string   `json:"time"`
	TV              string   `json:"tv"`
	Venue           string   `json:"venue"`
	TeamStarter     string   `json:"team_starter"`
	OpponentStarter string   `json:"opponent_starter"`
}

// IsHome reports whether the selected team is the home side
func (g Game) IsHome() bool {
	return g.Relation == Home
}

// Matchup renders "Mascot vs. Opponent" or "Mascot @ Opponent"
func (g Game) Matchup() string {
	if g.IsHome() {
		return g.TeamMascot + " vs. " + g.Opponent
	}
	return g.TeamMascot + " @ " + g.Opponent
}
