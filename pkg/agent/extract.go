package agent

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	jsonFence = regexp.MustCompile("(?s)```json\\s*(.*?)```")
	anyFence  = regexp.MustCompile("(?s)```\\s*(.*?)```")
)

// ExtractJSON pulls the first JSON document out of an agent reply.
// Accepted formats, first match wins: bare JSON, a ```json fenced block,
// an unlabelled ``` fenced block.
func ExtractJSON(reply string) (string, bool) {
	trimmed := strings.TrimSpace(reply)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		if json.Valid([]byte(trimmed)) {
			return trimmed, true
		}
	}
	if m := jsonFence.FindStringSubmatch(reply); m != nil {
		doc := strings.TrimSpace(m[1])
		if json.Valid([]byte(doc)) {
			return doc, true
		}
	}
	if m := anyFence.FindStringSubmatch(reply); m != nil {
		doc := strings.TrimSpace(m[1])
		if json.Valid([]byte(doc)) {
			return doc, true
		}
	}
	return "", false
}
