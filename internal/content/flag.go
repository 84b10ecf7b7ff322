package content

import "strings"

// FlagEmoji renders a flag identifier as a regional-indicator emoji.
// Accepts two-letter country codes ("in", "JP") and the ":flag_xx:" alias
// form; any other identifier is returned unchanged.
func FlagEmoji(id string) string {
	code := strings.TrimSpace(id)
	if strings.HasPrefix(code, ":flag_") && strings.HasSuffix(code, ":") {
		code = strings.TrimSuffix(strings.TrimPrefix(code, ":flag_"), ":")
	}
	if len(code) != 2 {
		return id
	}

	code = strings.ToUpper(code)
	var b strings.Builder
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return id
		}
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}
