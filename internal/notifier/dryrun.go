package notifier

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"
)

// DryRunNotifier prints what would be posted without posting it
type DryRunNotifier struct {
	w io.Writer
}

// NewDryRunNotifier creates a dry-run notifier writing to w
func NewDryRunNotifier(w io.Writer) *DryRunNotifier {
	return &DryRunNotifier{w: w}
}

// Notify prints the post and its length
func (n *DryRunNotifier) Notify(ctx context.Context, text string) error {
	if text == "" {
		return fmt.Errorf("post text is required")
	}
	fmt.Fprintln(n.w, "--- Post ---")
	fmt.Fprintln(n.w, text)
	length := utf8.RuneCountInString(text)
	if length > MaxTweetLength {
		fmt.Fprintf(n.w, "\n(Length: %d characters, Twitter would truncate to %d)\n", length, MaxTweetLength)
		return nil
	}
	fmt.Fprintf(n.w, "\n(Length: %d characters)\n", length)
	return nil
}
