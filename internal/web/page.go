package web

import (
	"html/template"

	"github.com/leftweet/nextgamesnippet/internal/snippet"
	"github.com/leftweet/nextgamesnippet/internal/team"
)

// field is one labeled value in the results list
type field struct {
	Label string
	Value string
}

type pageData struct {
	Teams          []team.Team
	Selected       string
	SummaryEnabled bool
	Error          string
	Warning        string
	Report         *snippet.Report
	Fields         []field
}

func rowFields(r *snippet.Report) []field {
	return []field{
		{"Date", r.Raw.Date},
		{"OPP", r.Raw.Opponent},
		{"Time / TV", r.Raw.TimeTV},
		{"Venue", r.Raw.Venue},
		{"Home starter", r.Raw.HomeStarter},
		{"Away starter", r.Raw.AwayStarter},
	}
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Next Game Snippet</title>
<style>
body { font-family: sans-serif; max-width: 46rem; margin: 2rem auto; padding: 0 1rem; }
.banner { padding: .75rem 1rem; border-radius: 4px; margin: 1rem 0; }
.error { background: #fde2e1; color: #8a1c1c; }
.warning { background: #fff4ce; color: #6b5200; }
.success { background: #e3f6e5; color: #1e5f27; }
dt { font-weight: bold; }
dd { margin: 0 0 .5rem 0; }
#summary { white-space: pre-wrap; border-left: 4px solid #ccc; padding-left: 1rem; }
</style>
</head>
<body>
<h1>&#9918; Next Game Snippet</h1>
<p>Game information is scraped from <a href="https://www.cbssports.com/mlb/teams/">CBS Sports</a>.</p>

<form method="post" action="/">
  <label for="team">Team</label>
  <select id="team" name="team">
    <option value="">Select a team</option>
    {{- range .Teams}}
    <option value="{{.Name}}"{{if eq .Name $.Selected}} selected{{end}}>{{.Name}}</option>
    {{- end}}
  </select>
  <button type="submit">Get Next Game</button>
</form>

{{if .Error}}<div class="banner error" role="alert">{{.Error}}</div>{{end}}
{{if .Warning}}<div class="banner warning">{{.Warning}}</div>{{end}}

{{with .Report}}
<div class="banner success">Found the next game for the {{.Team.Name}}.</div>
<h2>{{.Game.Matchup}}</h2>
<dl>
  {{- range $.Fields}}
  <dt>{{.Label}}</dt><dd>{{.Value}}</dd>
  {{- end}}
</dl>
<p><a href="/api/next-game.ics?team={{.Team.Abbreviation}}">Add to calendar</a></p>

{{with .Summary}}
<h2>Summary</h2>
<p id="summary">{{.Text}}</p>
{{if .Copyable}}<button type="button" id="copy">Copy to clipboard</button>
<script>
document.getElementById("copy").addEventListener("click", function () {
  var text = document.getElementById("summary").innerText;
  navigator.clipboard.writeText(text).then(function () {
    document.getElementById("copy").innerText = "Copied!";
  });
});
</script>{{end}}
{{end}}
{{end}}

{{if not .SummaryEnabled}}<p><small>Summaries are disabled because no text-generation API key is configured.</small></p>{{end}}
<hr>
<p><small>Note: web scraping can be unreliable if the website structure changes.</small></p>
</body>
</html>
`))
