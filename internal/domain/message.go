package domain

import "strings"

// NotificationMessage is a fully built outbound email. It is owned by the
// dispatcher for the duration of a single send and never stored.
type NotificationMessage struct {
	To      string
	From    string
	ReplyTo string
	Subject string
	Body    string
}

// JoinLines builds a plain-text body from ordered labeled lines, dropping
// empty ones
func JoinLines(lines ...string) string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
