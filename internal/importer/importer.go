package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/lwenger/vocatrain/internal/models"
	"github.com/lwenger/vocatrain/pkg/normalize"
)

var (
	// ErrUnavailable means no document parser is wired in; the import
	// action as a whole is unavailable.
	ErrUnavailable = errors.New("document parser is not available")
	// ErrEmpty means the document parsed fine but contained no word pairs.
	ErrEmpty = errors.New("no word pairs found in document")
)

// Document is the slice of a parsed file the importer works on: table cell
// text and paragraph text, in document order.
type Document interface {
	Tables() [][][]string
	Paragraphs() []string
}

// Parser turns raw file bytes into a Document.
type Parser interface {
	Parse(data []byte) (Document, error)
}

type Importer struct {
	parser Parser
}

func New(parser Parser) *Importer {
	return &Importer{
		parser: parser,
	}
}

// Import extracts deduplicated de/fr pairs from raw document bytes. Pairs
// come from two-column tables (a header row naming the language codes is
// skipped) and from paragraphs of the form "deutsch ; français". The
// returned collection name is the hint, falling back to "Import".
func (i *Importer) Import(data []byte, nameHint string) (string, []models.Pair, error) {
	if i.parser == nil {
		return "", nil, ErrUnavailable
	}

	doc, err := i.parser.Parse(data)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse document: %w", err)
	}

	pairs := pairsFromTables(doc.Tables())
	pairs = append(pairs, pairsFromParagraphs(doc.Paragraphs())...)

	pairs = lo.UniqBy(pairs, func(p models.Pair) string {
		return normalize.Fold(p.De) + "\x00" + normalize.Fold(p.Fr)
	})

	if len(pairs) == 0 {
		return "", nil, ErrEmpty
	}

	name := strings.TrimSpace(nameHint)
	if name == "" {
		name = "Import"
	}

	return name, pairs, nil
}

func pairsFromTables(tables [][][]string) []models.Pair {
	var out []models.Pair

	for _, tbl := range tables {
		for rowIdx, row := range tbl {
			if len(row) < 2 {
				continue
			}

			de := strings.TrimSpace(row[0])
			fr := strings.TrimSpace(row[1])
			if de == "" || fr == "" {
				continue
			}
			if rowIdx == 0 && isHeaderRow(de, fr) {
				continue
			}

			out = append(out, models.Pair{De: de, Fr: fr})
		}
	}

	return out
}

// isHeaderRow recognizes a first table row that carries column labels
// ("DE | FR", "Deutsch | Französisch") instead of vocabulary.
func isHeaderRow(de, fr string) bool {
	return strings.Contains(strings.ToLower(de), "de") && strings.Contains(strings.ToLower(fr), "fr")
}

func pairsFromParagraphs(paragraphs []string) []models.Pair {
	var out []models.Pair

	for _, p := range paragraphs {
		text := strings.TrimSpace(p)
		if !strings.Contains(text, ";") {
			continue
		}

		parts := strings.Split(text, ";")
		de := strings.TrimSpace(parts[0])
		fr := strings.TrimSpace(parts[1])
		if de == "" || fr == "" {
			continue
		}

		out = append(out, models.Pair{De: de, Fr: fr})
	}

	return out
}
