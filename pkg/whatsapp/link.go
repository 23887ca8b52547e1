// Package whatsapp builds the wa.me deep links shown on professional
// profiles. The output format is public-facing and must stay stable.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// Argentina country code, prepended to numbers stored in local format.
const countryCode = "54"

const greeting = "Hola Dr./Dra. %s, encontré su perfil en el Directorio de Salud Valle de Uco y quisiera más información sobre su atención."

// Link builds a WhatsApp deep link for the stored number, pre-populated with
// a greeting addressed to the professional's surname (the last
// whitespace-separated token of the display name). It returns false when no
// usable number is stored.
func Link(raw, displayName string) (string, bool) {
	digits := stripNonDigits(raw)
	if digits == "" {
		return "", false
	}

	if strings.HasPrefix(digits, "0") {
		digits = countryCode + digits[1:]
	} else if !strings.HasPrefix(digits, countryCode) {
		digits = countryCode + digits
	}

	surname := displayName
	if parts := strings.Fields(displayName); len(parts) > 0 {
		surname = parts[len(parts)-1]
	}

	message := fmt.Sprintf(greeting, surname)
	return "https://wa.me/" + digits + "?text=" + escape(message), true
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escape percent-encodes the message, keeping "/" literal and encoding
// spaces as %20 so existing links keep resolving unchanged.
func escape(s string) string {
	e := url.QueryEscape(s)
	e = strings.ReplaceAll(e, "+", "%20")
	e = strings.ReplaceAll(e, "%2F", "/")
	return e
}
