// Package llm - util.go provides shared utilities for AI response processing.
package llm

import "strings"

// CleanJSONBlock extracts the JSON payload from an AI response.
// Providers often wrap JSON in ```json ... ``` blocks or add prose around it even when
// instructed not to. Returns "" when no JSON object or array can be found.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			// If first line looks like a language identifier (no spaces, short), skip it
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	// Skip any preamble and drop trailing prose
	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return ""
	}
	text = text[start:]
	if text[0] == '{' {
		if object := extractJSONObject(text); object != "" {
			return object
		}
	} else if array := extractJSONArray(text); array != "" {
		return array
	}
	return text
}

// extractJSONObject returns the balanced {...} prefix of text
func extractJSONObject(text string) string {
	return extractBalanced(text, '{', '}')
}

// extractJSONArray returns the balanced [...] prefix of text
func extractJSONArray(text string) string {
	return extractBalanced(text, '[', ']')
}

// extractBalanced scans from an opening delimiter to its matching close, ignoring
// delimiters inside JSON strings. Returns "" when text does not start with open or never closes.
func extractBalanced(text string, open, close byte) string {
	if text == "" || text[0] != open {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}
