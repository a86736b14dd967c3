package export

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/htaso/evaltracker/internal/evaluation"
)

// PDF renders the evaluation report as a PDF document. The logo is
// optional; a missing file just leaves it out.
func PDF(rec *evaluation.Record, logoPath string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 30

	if logoPath != "" {
		if _, err := os.Stat(logoPath); err == nil {
			pdf.ImageOptions(logoPath, (pageWidth-40)/2, pdf.GetY(), 40, 0, true,
				fpdf.ImageOptions{ReadDpi: true}, 0, "")
			pdf.Ln(4)
		}
	}

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentWidth, 10, reportTitle, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentWidth, 6, preparedOn(), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeDetailsTable(pdf, rec, contentWidth)
	writeSectionScores(pdf, rec, contentWidth)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(contentWidth, 6, overallSummary(rec), "", "L", false)
	pdf.Ln(4)

	writeRatings(pdf, rec, contentWidth)
	writeRecommendation(pdf, rec, contentWidth)
	writeComments(pdf, rec, contentWidth)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func writeDetailsTable(pdf *fpdf.Fpdf, rec *evaluation.Record, contentWidth float64) {
	labelWidth := contentWidth / 3
	valueWidth := contentWidth - labelWidth

	pdf.SetDrawColor(128, 128, 128)
	for _, row := range detailRows(rec) {
		pdf.SetFillColor(29, 53, 87)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(labelWidth, 7, row[0], "1", 0, "L", true, 0, "")

		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(valueWidth, 7, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

func writeSectionScores(pdf *fpdf.Fpdf, rec *evaluation.Record, contentWidth float64) {
	if len(rec.SectionTotals) == 0 {
		return
	}

	heading(pdf, "Section Scores")

	widths := [4]float64{contentWidth * 0.4, contentWidth * 0.2, contentWidth * 0.15, contentWidth * 0.25}
	headers := [4]string{"Section", "HTASO Avg", "Rank", "Percentage"}

	pdf.SetFillColor(42, 157, 143)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		last := 0
		if i == 3 {
			last = 1
		}
		pdf.CellFormat(widths[i], 7, h, "1", last, "L", true, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	for _, total := range rec.SectionTotals {
		row := sectionScoreRow(total)
		for i, cell := range row {
			last := 0
			if i == 3 {
				last = 1
			}
			pdf.CellFormat(widths[i], 7, cell, "1", last, "L", false, 0, "")
		}
	}
	pdf.Ln(6)
}

func writeRatings(pdf *fpdf.Fpdf, rec *evaluation.Record, contentWidth float64) {
	for _, group := range groupRatings(rec.Ratings) {
		heading(pdf, group.Section)
		for _, sub := range group.Subsections {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(contentWidth, 7, sub.Subsection, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			for _, item := range sub.Items {
				pdf.MultiCell(contentWidth, 5.5, "- "+ratingLine(item), "", "L", false)
			}
			pdf.Ln(2)
		}
		pdf.Ln(2)
	}
}

func writeRecommendation(pdf *fpdf.Fpdf, rec *evaluation.Record, contentWidth float64) {
	heading(pdf, "Overall Recommendation")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(contentWidth, 6, recommendationText(rec), "", "L", false)
	pdf.Ln(4)
}

func writeComments(pdf *fpdf.Fpdf, rec *evaluation.Record, contentWidth float64) {
	sections := commentSections(rec.Comments)
	hasComments := false
	for _, section := range sections {
		if strings.TrimSpace(section[1]) != "" {
			hasComments = true
			break
		}
	}
	if !hasComments {
		return
	}

	heading(pdf, "Evaluator Comments")
	for _, section := range sections {
		if strings.TrimSpace(section[1]) == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentWidth, 7, section[0], "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(contentWidth, 5.5, section[1], "", "L", false)
		pdf.Ln(2)
	}
}

func heading(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, text, "", 1, "L", false, 0, "")
}
