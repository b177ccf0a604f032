package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

const maxPickCount = 10

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' || r == ',' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

// parseCount understands "3", "x3" and "3x".
func parseCount(token string) (int, bool) {
	token = strings.TrimSpace(strings.ToLower(token))
	token = strings.TrimSuffix(strings.TrimPrefix(token, "x"), "x")
	n, err := strconv.Atoi(token)
	if err != nil || n < 1 {
		return 0, false
	}
	return min(n, maxPickCount), true
}

func isFiller(token string) bool {
	switch token {
	case "give", "hand", "pick", "sell", "a", "an", "one", "plushie", "plushies", "please", "pls", "the", "of":
		return true
	default:
		return false
	}
}
