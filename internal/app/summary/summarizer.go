// Package summary wraps the external note-summarization tool behind a
// narrow interface so the note service can be tested with a fake.
package summary

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Fallback is stored in place of a summary when the external tool fails.
const Fallback = "Summary could not be generated."

// maxLen bounds stored summaries; longer output is cut and marked.
const maxLen = 200

// Summarizer produces a short synopsis of text. Implementations never
// return an error: any failure degrades to a placeholder summary, and empty
// input yields nil (no summary at all).
type Summarizer interface {
	Summarize(ctx context.Context, text string) *string
}

// CLISummarizer shells out to an external command-line tool (gemini by
// default). The call is synchronous and bounded by timeout; latency lands
// on the note-creation request that triggered it.
type CLISummarizer struct {
	command string
	timeout time.Duration
	log     *zap.SugaredLogger
}

func NewCLISummarizer(command string, timeout time.Duration, log *zap.SugaredLogger) *CLISummarizer {
	return &CLISummarizer{command: command, timeout: timeout, log: log}
}

func (s *CLISummarizer) Summarize(ctx context.Context, text string) *string {
	if text == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.command, "Summarize the following text: "+text)
	out, err := cmd.Output()
	if err != nil {
		var stderr string
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		s.log.Warnw("summary tool failed", "command", s.command, "error", err, "stderr", stderr)
		fallback := Fallback
		return &fallback
	}

	result := truncate(strings.TrimSpace(string(out)))
	return &result
}

// truncate cuts at maxLen characters, not bytes, so multi-byte output is
// never split mid-rune.
func truncate(summary string) string {
	runes := []rune(summary)
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return summary
}
