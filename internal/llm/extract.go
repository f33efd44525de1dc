package llm

import "strings"

// extractJSON pulls a JSON object or array out of a model response that may
// wrap it in a markdown fence or surrounding prose. Returns the input
// unchanged when nothing recognizable is found.
func extractJSON(s string) string {
	for _, fence := range []string{"```json", "```"} {
		if body, ok := insideFence(s, fence); ok {
			return body
		}
	}

	for i := 0; i < len(s); i++ {
		if s[i] != '{' && s[i] != '[' {
			continue
		}
		depth := 0
		for j := i; j < len(s); j++ {
			switch s[j] {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
				if depth == 0 {
					return s[i : j+1]
				}
			}
		}
		break
	}
	return s
}

func insideFence(s, fence string) (string, bool) {
	start := strings.Index(s, fence)
	if start == -1 {
		return "", false
	}
	start += len(fence)
	for start < len(s) && (s[start] == '\n' || s[start] == '\r') {
		start++
	}
	end := strings.Index(s[start:], "```")
	if end == -1 {
		return "", false
	}
	return strings.TrimRight(s[start:start+end], "\r\n"), true
}
