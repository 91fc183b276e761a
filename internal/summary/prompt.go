package summary

import (
	"strings"
	"text/template"

	"github.com/leftweet/nextgamesnippet/internal/game"
)

var promptTemplate = template.Must(template.New("prompt").Parse(`Write a one to two sentence preview of the next {{.TeamMascot}} game using only the details below.

Date: {{.Date}}
Team: {{.TeamMascot}}
Opponent: {{.Opponent}}
Home or away: {{if .IsHome}}home{{else}}away{{end}}
Time: {{.Time}}
TV: {{.TV}}
Venue: {{.Venue}}
{{.TeamMascot}} starting pitcher: {{.TeamStarter}}
{{.Opponent}} starting pitcher: {{.OpponentStarter}}

Formatting rules:
- Write the date as "Month Day", exactly as given ("{{.Date}}").
- Refer to the team by its mascot only ("{{.TeamMascot}}"), never by its city.
- Refer to the opponent by its full name ("{{.Opponent}}").
- Write the time exactly as given ("{{.Time}}"). If it is TBD, say the start time is to be determined.
{{- if eq .TV "Not specified"}}
- No TV channel is known: leave the channel out or tell readers to check local listings.
{{- else}}
- Say the game airs on {{.TV}}.
{{- end}}
- If a starting pitcher is "Starter TBD", say the starter has not been announced.
- End every sentence with a period. Never use semicolons.
`))

// BuildPrompt renders the prompt for g
func BuildPrompt(g game.Game) string {
	var b strings.Builder
	// The template only reads string fields of game.Game and cannot fail
	_ = promptTemplate.Execute(&b, g)
	return b.String()
}
