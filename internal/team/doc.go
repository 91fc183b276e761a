// Package team provides the static directory of MLB franchises used to pick a team,
// build its schedule URL, and resolve opponent abbreviations to full franchise names.
//
// The directory is built once at startup and is read-only afterwards, so it can be
// shared freely between requests.
package team
