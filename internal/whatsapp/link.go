// Package whatsapp builds wa.me click-to-chat links for order hand-off.
package whatsapp

import (
	"net/url"
	"strings"
)

// EncodeText percent-encodes message text for a wa.me link. wa.me expects
// spaces as %20, not "+", so this matches JavaScript's encodeURIComponent
// rather than form encoding.
func EncodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// OrderLink returns the wa.me URL that opens a chat with the given business
// phone, pre-filled with the message text.
func OrderLink(businessPhone, text string) string {
	return "https://wa.me/" + businessPhone + "?text=" + EncodeText(text)
}
