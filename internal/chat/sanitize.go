package chat

import (
	"regexp"
	"strings"
)

// Some models leak template artifacts into their output. These cover the ones
// seen with mistral-family models served by Ollama.
var (
	controlRe = regexp.MustCompile(`\[control_\d+\]`)
	unknownRe = regexp.MustCompile(`<unk>`)
	toolRe    = regexp.MustCompile(`\[TOOL_CALLS\]|\[TOOL_RESULTS\]`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// Clean strips control/template tokens from a streamed chunk and collapses
// whitespace runs to single spaces.
func Clean(raw string) string {
	s := controlRe.ReplaceAllString(raw, "")
	s = unknownRe.ReplaceAllString(s, "")
	s = toolRe.ReplaceAllString(s, "")
	return spaceRe.ReplaceAllString(s, " ")
}

// CleanForRelay returns the chunk as it should be forwarded to the client,
// with ok=false for chunks that are empty once cleaned.
func CleanForRelay(raw string) (string, bool) {
	cleaned := Clean(raw)
	if strings.TrimSpace(cleaned) == "" {
		return "", false
	}
	return cleaned + " ", true
}
