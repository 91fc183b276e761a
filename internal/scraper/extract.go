package scraper

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/leftweet/nextgamesnippet/internal/game"
)

// CellCount is the number of schedule columns read from a row:
// date, opponent, time/TV, venue, home starter, away starter.
const CellCount = 6

// nameSlugPattern matches player profile slugs such as "jacob-degrom"
var nameSlugPattern = regexp.MustCompile(`^[A-Za-z0-9]+(?:-[A-Za-z0-9]+)+$`)

// ExtractRow reads the six schedule cells from row. Rows with fewer cells are
// padded with the N/A sentinel and reported through the returned warning.
func ExtractRow(row *goquery.Selection, scrapedFor string) (game.RawRow, *ShortRowWarning) {
	raw := game.NewRawRow(scrapedFor)
	cells := row.Find("td")

	var warning *ShortRowWarning
	if cells.Length() < CellCount {
		warning = &ShortRowWarning{Found: cells.Length(), Expected: CellCount}
	}

	fields := []*string{&raw.Date, &raw.Opponent, &raw.TimeTV, &raw.Venue}
	for i, field := range fields {
		if i < cells.Length() {
			*field = CellText(cells.Eq(i))
		}
	}

	if cells.Length() > 4 {
		raw.HomeStarter = StarterName(cells.Eq(4))
	}
	if cells.Length() > 5 {
		raw.AwayStarter = StarterName(cells.Eq(5))
	}

	return raw, warning
}

// CellText joins the visible text of a cell with single spaces
func CellText(cell *goquery.Selection) string {
	return strings.Join(strings.Fields(strings.Join(textFragments(cell), " ")), " ")
}

// StarterName extracts a probable starter from a cell. Names are taken from the
// player profile link slug when there is one, since the visible text is often
// truncated; a parenthesized stats fragment such as "(3-2, 2.45)" is appended.
func StarterName(cell *goquery.Selection) string {
	var name string
	cell.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		name = nameFromHref(href)
		return name == ""
	})

	fragments := textFragments(cell)

	if name != "" {
		var stats string
		for _, f := range fragments {
			if strings.HasPrefix(f, "(") && strings.HasSuffix(f, ")") {
				stats = f
				break
			}
		}
		return strings.TrimRight(name+" "+stats, " \t\n")
	}

	if joined := strings.Join(fragments, " "); joined != "" {
		return joined
	}
	return game.NotAvailable
}

// nameFromHref turns ".../players/2116456/jacob-degrom/" into "Jacob Degrom".
// It returns "" when the last path segment is not a name slug.
func nameFromHref(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}

	path := strings.TrimRight(u.Path, "/")
	slug := path[strings.LastIndex(path, "/")+1:]
	if !nameSlugPattern.MatchString(slug) {
		return ""
	}

	parts := strings.Split(slug, "-")
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
	}
	return strings.Join(parts, " ")
}

// textFragments returns the trimmed, non-empty text nodes under sel in document order
func textFragments(sel *goquery.Selection) []string {
	var out []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				out = append(out, t)
			}
			return
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range sel.Nodes {
		walk(n)
	}
	return out
}
