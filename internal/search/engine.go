// Package search filters catalog items by a free-text query and annotates
// matches for display. It is stateless: every call starts from the original
// field text, so annotations never nest or accumulate.
package search

import (
	"strings"

	"github.com/oaktable/menu-service/internal/catalog"
)

// Highlight markers wrapped around each matched substring.
const (
	markOpen  = "<mark>"
	markClose = "</mark>"
)

// ItemResult is the per-item outcome of a query. Name and Description carry
// the annotated text for matched fields and the original text otherwise.
type ItemResult struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Matched     bool   `json:"matched"`
}

// Result is the full outcome for one query against one catalog.
type Result struct {
	// Query is the trimmed query that was evaluated. Empty means the result
	// is inactive: everything matches and nothing is annotated.
	Query        string          `json:"query"`
	Active       bool            `json:"active"`
	Items        []ItemResult    `json:"items"`
	MatchedCount int             `json:"matchedCount"`
	// Sections reports, per category, whether at least one item matched, so
	// the caller can hide empty sections.
	Sections map[string]bool `json:"sections"`
}

// Run evaluates a query against the items. A blank query matches everything
// and produces no annotation. Matching is case-insensitive substring
// containment against name and description independently; query characters
// are always literal.
func Run(items []catalog.Item, query string) Result {
	q := strings.ToLower(strings.TrimSpace(query))

	res := Result{
		Query:    q,
		Active:   q != "",
		Items:    make([]ItemResult, 0, len(items)),
		Sections: make(map[string]bool, 8),
	}

	for _, it := range items {
		ir := ItemResult{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Category:    it.Category,
		}

		if !res.Active {
			ir.Matched = true
		} else {
			nameHit := contains(it.Name, q)
			descHit := contains(it.Description, q)
			ir.Matched = nameHit || descHit
			if nameHit {
				ir.Name = Annotate(it.Name, q)
			}
			if descHit {
				ir.Description = Annotate(it.Description, q)
			}
		}

		if ir.Matched {
			res.MatchedCount++
			res.Sections[it.Category] = true
		} else if _, seen := res.Sections[it.Category]; !seen {
			res.Sections[it.Category] = false
		}
		res.Items = append(res.Items, ir)
	}

	return res
}

func contains(text, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(text), loweredQuery)
}

// Annotate wraps every non-overlapping case-insensitive occurrence of the
// query in highlight markers, preserving the original casing of the text.
// It operates on plain text only; a blank query returns the text unchanged.
func Annotate(text, query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return text
	}

	lower := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(text) + 2*(len(markOpen)+len(markClose)))

	pos := 0
	for {
		idx := strings.Index(lower[pos:], q)
		if idx < 0 {
			b.WriteString(text[pos:])
			break
		}
		start := pos + idx
		end := start + len(q)
		b.WriteString(text[pos:start])
		b.WriteString(markOpen)
		b.WriteString(text[start:end])
		b.WriteString(markClose)
		pos = end
	}
	return b.String()
}
