package pipeline

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/termgate"
)

// ContentHash computes the xxhash of a document's raw page text.
// Identical inputs always hash the same, so re-runs can skip them.
func ContentHash(pages []termgate.Page) string {
	h := xxhash.New()
	for i, p := range pages {
		if i > 0 {
			_, _ = h.WriteString("\f")
		}
		_, _ = h.WriteString(p.Text)
	}
	return fmt.Sprintf("%x", h.Sum64())
}

func hasText(pages []termgate.Page) bool {
	for _, p := range pages {
		if strings.TrimSpace(p.Text) != "" {
			return true
		}
	}
	return false
}
