// Package notifier shares a next-game snippet on an external channel.
//
// Three channels exist: Twitter (OAuth 1.0a), a Telegram bot chat, and a
// dry run that writes the post to a local writer. Every channel receives the
// same formatted post text.
package notifier
