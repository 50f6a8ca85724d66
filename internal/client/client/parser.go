package client

import (
	"regexp"
	"strings"

	"github.com/glasses-man/exampilot/internal/client/models"
)

var stepPrefix = regexp.MustCompile(`^STEP \d+:\s*`)

const finalAnswerPrefix = "FINAL ANSWER:"

// ParseExplanation extracts ordered steps and a final answer from raw
// explanation text following the line-oriented convention: lines starting
// with "STEP" become steps (numeric prefix stripped), the line starting with
// "FINAL ANSWER:" becomes the final answer. The format is advisory —
// missing or malformed lines simply yield an empty steps sequence or empty
// answer, never an error.
func ParseExplanation(raw string) models.Explanation {
	var out models.Explanation

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "STEP"):
			out.Steps = append(out.Steps, stepPrefix.ReplaceAllString(trimmed, ""))
		case strings.HasPrefix(trimmed, finalAnswerPrefix):
			out.FinalAnswer = strings.TrimSpace(strings.TrimPrefix(trimmed, finalAnswerPrefix))
		}
	}

	return out
}
