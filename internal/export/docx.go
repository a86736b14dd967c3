package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/htaso/evaltracker/internal/evaluation"
)

// Word renders the evaluation report as a .docx document. The document is
// written directly as WordprocessingML: a package with the content types
// part, the package relationships and a single document part.
func Word(rec *evaluation.Record) ([]byte, error) {
	doc := newDocWriter()

	doc.heading(reportTitle, 1)
	doc.paragraph(preparedOn())
	doc.paragraph("")

	doc.table(detailTableRows(rec), true)
	doc.paragraph("")

	if len(rec.SectionTotals) > 0 {
		doc.heading("Section Scores", 2)
		rows := [][]string{{"Section", "HTASO Avg", "Rank", "Percentage"}}
		for _, total := range rec.SectionTotals {
			row := sectionScoreRow(total)
			rows = append(rows, row[:])
		}
		doc.table(rows, true)
		doc.paragraph("")
	}

	doc.heading("Evaluation Summary", 2)
	doc.paragraph(overallSummary(rec))

	for _, group := range groupRatings(rec.Ratings) {
		doc.heading(group.Section, 2)
		for _, sub := range group.Subsections {
			doc.heading(sub.Subsection, 3)
			for _, item := range sub.Items {
				doc.bullet(ratingLine(item))
			}
		}
	}

	doc.heading("Overall Recommendation", 2)
	doc.paragraph(recommendationText(rec))

	doc.heading("Evaluator Comments", 2)
	for _, section := range commentSections(rec.Comments) {
		doc.heading(section[0], 3)
		text := strings.TrimSpace(section[1])
		if text == "" {
			text = "None provided."
		}
		doc.paragraph(text)
	}

	return packDocx(doc.documentXML())
}

// docWriter accumulates the body of word/document.xml.
type docWriter struct {
	body bytes.Buffer
}

func newDocWriter() *docWriter {
	return &docWriter{}
}

// headingSizes are run sizes in half-points per heading level.
var headingSizes = map[int]int{1: 36, 2: 28, 3: 24}

func (d *docWriter) heading(text string, level int) {
	size, ok := headingSizes[level]
	if !ok {
		size = 24
	}
	d.body.WriteString(`<w:p><w:r><w:rPr><w:b/><w:sz w:val="`)
	fmt.Fprintf(&d.body, "%d", size)
	d.body.WriteString(`"/></w:rPr>`)
	d.text(text)
	d.body.WriteString(`</w:r></w:p>`)
}

func (d *docWriter) paragraph(text string) {
	d.body.WriteString(`<w:p><w:r>`)
	d.text(text)
	d.body.WriteString(`</w:r></w:p>`)
}

func (d *docWriter) bullet(text string) {
	d.body.WriteString(`<w:p><w:pPr><w:ind w:left="360"/></w:pPr><w:r>`)
	d.text("- " + text)
	d.body.WriteString(`</w:r></w:p>`)
}

// table writes a bordered table. When header is true the first column (for
// two-column tables) or first row (for wider tables) is shaded and bold.
func (d *docWriter) table(rows [][]string, header bool) {
	if len(rows) == 0 {
		return
	}

	d.body.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/><w:tblBorders>`)
	for _, edge := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		fmt.Fprintf(&d.body, `<w:%s w:val="single" w:sz="4" w:space="0" w:color="808080"/>`, edge)
	}
	d.body.WriteString(`</w:tblBorders></w:tblPr>`)

	labelColumn := len(rows[0]) == 2
	for ri, row := range rows {
		d.body.WriteString(`<w:tr>`)
		for ci, cell := range row {
			emphasized := header && ((labelColumn && ci == 0) || (!labelColumn && ri == 0))
			d.body.WriteString(`<w:tc><w:tcPr>`)
			if emphasized {
				d.body.WriteString(`<w:shd w:val="clear" w:color="auto" w:fill="1D3557"/>`)
			}
			d.body.WriteString(`</w:tcPr><w:p><w:r>`)
			if emphasized {
				d.body.WriteString(`<w:rPr><w:b/><w:color w:val="FFFFFF"/></w:rPr>`)
			}
			d.text(cell)
			d.body.WriteString(`</w:r></w:p></w:tc>`)
		}
		d.body.WriteString(`</w:tr>`)
	}
	d.body.WriteString(`</w:tbl>`)
}

func (d *docWriter) text(text string) {
	d.body.WriteString(`<w:t xml:space="preserve">`)
	_ = xml.EscapeText(&d.body, []byte(text))
	d.body.WriteString(`</w:t>`)
}

func (d *docWriter) documentXML() []byte {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	buf.Write(d.body.Bytes())
	buf.WriteString(`<w:sectPr/></w:body></w:document>`)
	return buf.Bytes()
}

func detailTableRows(rec *evaluation.Record) [][]string {
	rows := make([][]string, 0)
	for _, row := range detailRows(rec) {
		rows = append(rows, []string{row[0], row[1]})
	}
	return rows
}

const contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`</Types>`

const packageRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

// packDocx assembles the document part into a .docx zip package.
func packDocx(documentXML []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/document.xml", documentXML},
	}
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create package part %s: %w", part.name, err)
		}
		if _, err := f.Write(part.data); err != nil {
			return nil, fmt.Errorf("failed to write package part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize package: %w", err)
	}
	return buf.Bytes(), nil
}
