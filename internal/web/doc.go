// Package web serves the next-game form and a small JSON API.
//
// GET / renders the team picker. POST / runs one lookup and renders the six
// scraped fields, the optional summary with a copy button, and any error or
// warning banner. The same lookup is available as JSON under /api.
package web
