// Package narrative produces the 120-180 word brief narrative. The remote
// composer asks a chat model and validates the reply; every failure path
// falls back to the deterministic offline composer, so Compose never returns
// an error to the caller in practice.
package narrative

import (
	"context"
	"strings"

	"server/internal/domain"
)

// Composer turns a validated request and a client seed into narrative prose.
type Composer interface {
	Compose(ctx context.Context, req *domain.BriefRequest, seed int) (string, error)
}

const (
	minNarrativeWords = 120
	maxNarrativeWords = 180
)

// bannedWords are marketing cliches a narrative must never contain.
var bannedWords = []string{"sanctuary", "oasis", "seamless", "elevate", "curated"}

func countWords(text string) int {
	return len(strings.Fields(text))
}

func containsBannedWords(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range bannedWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// formatList joins items as natural prose with an Oxford comma.
func formatList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}
