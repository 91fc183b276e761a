// Package game holds the raw and normalized representations of a team's next game.
//
// RawRow carries the six cell values exactly as scraped from the schedule table.
// Normalize turns a RawRow into a Game: dates become "Month Day", opponent
// abbreviations become franchise names, times become "H:MM a.m./p.m. ET" and TV
// network codes become full network names. Every helper is a pure function that
// degrades to a pass-through or placeholder value instead of returning an error.
package game
