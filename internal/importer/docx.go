package importer

import (
	"bytes"
	"strings"

	docx "github.com/fumiama/go-docx"
)

// DocxParser reads .docx files via go-docx.
type DocxParser struct{}

func (DocxParser) Parse(data []byte) (Document, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	d := &docxDocument{}
	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			d.paragraphs = append(d.paragraphs, it.String())
		case *docx.Table:
			var rows [][]string
			for _, tr := range it.TableRows {
				var cells []string
				for _, tc := range tr.TableCells {
					var sb strings.Builder
					for _, p := range tc.Paragraphs {
						sb.WriteString(p.String())
					}
					cells = append(cells, sb.String())
				}
				rows = append(rows, cells)
			}
			d.tables = append(d.tables, rows)
		}
	}

	return d, nil
}

type docxDocument struct {
	tables     [][][]string
	paragraphs []string
}

func (d *docxDocument) Tables() [][][]string { return d.tables }

func (d *docxDocument) Paragraphs() []string { return d.paragraphs }
