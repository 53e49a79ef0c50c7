package store

import (
	"fmt"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/jeanpaul/rolodex/internal/book"
)

// Diff returns a unified diff between the saved <name>.json book and the
// in-memory one, rendered as display lines. An empty string means the two
// are equivalent.
func (s *Store) Diff(name string, ab *book.AddressBook) (string, error) {
	saved, err := s.LoadJSON(name)
	if err != nil {
		return "", err
	}
	before := renderLines(saved)
	after := renderLines(ab)
	if before == after {
		return "", nil
	}

	uri := span.URIFromPath(s.path(name, ".json"))
	edits := myers.ComputeEdits(uri, before, after)
	return fmt.Sprint(gotextdiff.ToUnified(name+".json", "memory", before, edits)), nil
}

func renderLines(ab *book.AddressBook) string {
	var sb strings.Builder
	for _, rec := range ab.Records() {
		sb.WriteString(rec.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
