package whatsapp

import (
	"errors"
	"net/url"
	"strings"
)

// StripNumber removes everything except digits from a configured phone
// number, e.g. "+91 98765-43210" -> "919876543210".
func StripNumber(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildLink composes a wa.me deep link with the message prefilled. The link
// is fire-and-forget; there is no delivery confirmation.
func BuildLink(number, message string) (string, error) {
	digits := StripNumber(number)
	if digits == "" {
		return "", errors.New("whatsapp number is empty")
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message), nil
}
