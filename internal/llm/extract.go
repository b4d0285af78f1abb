package llm

import "strings"

// ExtractJSON strips a surrounding markdown code fence from an LLM reply.
// Models occasionally wrap the requested JSON in ``` or ```json blocks
// despite instructions; the payload between the first pair of fences is
// returned. Replies without fences pass through trimmed.
func ExtractJSON(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	parts := strings.Split(trimmed, "```")
	if len(parts) < 2 {
		return trimmed
	}
	inner := parts[1]
	inner = strings.TrimPrefix(inner, "json")
	return strings.TrimSpace(inner)
}
