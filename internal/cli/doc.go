// Package cli implements the nextgame command-line interface.
//
// The Cobra root command has four subcommands: teams lists the directory,
// fetch prints a team's next game (text or JSON, optionally with a generated
// summary), serve runs the web form, and share posts the snippet to Twitter,
// Telegram or a dry run. Configuration comes from the environment via the
// config package; flags override it where they overlap.
package cli
