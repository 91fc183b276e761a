// Package summary renders a normalized game into a prompt and turns a
// text-generation response into a one-to-two-sentence game preview.
//
// The package does not depend on a particular provider: anything implementing
// Generator can be plugged in. GeminiClient is the bundled implementation.
package summary
