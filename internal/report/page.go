package report

import (
	"github.com/jung-kurt/gofpdf"
)

// Page geometry (mm, A4 portrait).
const (
	marginLeft   = 10
	marginTop    = 28
	marginRight  = 10
	breakMargin  = 20
	labelColumn  = 55
	rowHeight    = 5
	bannerHeight = 7
)

// Brand accent colors: red banner/liquid side, blue vapor side.
var (
	accentRed  = [3]int{180, 30, 30}
	accentBlue = [3]int{0, 100, 180}
)

// doc is the mutable rendering context handed to every layout
// primitive: current cursor position and font state live on the
// wrapped Fpdf object, never in package globals.
type doc struct {
	pdf *gofpdf.Fpdf
	// tr maps UTF-8 text onto the cp1252 core-font encoding so units
	// like °F survive the built-in fonts.
	tr func(string) string
}

func (d *doc) addPage() { d.pdf.AddPage() }

func (d *doc) ln(h float64) { d.pdf.Ln(h) }

// sectionHeader renders a full-width filled banner and advances the
// cursor. Purely cosmetic, never fails.
func (d *doc) sectionHeader(title string) {
	d.pdf.SetFont("Helvetica", "B", 11)
	d.pdf.SetFillColor(accentRed[0], accentRed[1], accentRed[2])
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.CellFormat(0, bannerHeight, " "+d.tr(title), "", 1, "L", true, 0, "")
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.Ln(2)
}

// dataRow renders "label: value unit" with a right-aligned bold label
// and left-aligned value. An absent value is a no-op: no row, cursor
// unchanged. Returns whether the row rendered so callers can decide on
// trailing spacing.
func (d *doc) dataRow(label, value, unit string) bool {
	if value == "" {
		return false
	}
	d.pdf.SetFont("Helvetica", "B", 9)
	d.pdf.CellFormat(labelColumn, rowHeight, d.tr(label)+":", "", 0, "R", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 9)
	display := value
	if unit != "" {
		display += " " + unit
	}
	d.pdf.CellFormat(0, rowHeight, d.tr(display), "", 1, "L", false, 0, "")
	return true
}

// dataRowTwoCol renders two independent label/value pairs side by side.
// Each half is suppressed on its own when absent, with blank filler
// keeping the columns aligned; the row is skipped entirely only when
// both halves are absent.
func (d *doc) dataRowTwoCol(label1, value1, label2, value2, unit1, unit2 string) bool {
	has1 := value1 != ""
	has2 := value2 != ""
	if !has1 && !has2 {
		return false
	}

	if has1 {
		d.pdf.SetFont("Helvetica", "B", 9)
		d.pdf.CellFormat(35, rowHeight, d.tr(label1)+":", "", 0, "R", false, 0, "")
		d.pdf.SetFont("Helvetica", "", 9)
		v := value1
		if unit1 != "" {
			v += " " + unit1
		}
		d.pdf.CellFormat(55, rowHeight, d.tr(v), "", 0, "L", false, 0, "")
	} else {
		d.pdf.CellFormat(90, rowHeight, "", "", 0, "L", false, 0, "")
	}

	if has2 {
		d.pdf.SetFont("Helvetica", "B", 9)
		d.pdf.CellFormat(35, rowHeight, d.tr(label2)+":", "", 0, "R", false, 0, "")
		d.pdf.SetFont("Helvetica", "", 9)
		v := value2
		if unit2 != "" {
			v += " " + unit2
		}
		d.pdf.CellFormat(0, rowHeight, d.tr(v), "", 1, "L", false, 0, "")
	} else {
		d.pdf.Ln(-1)
	}

	return true
}

// paragraph renders a bold label line followed by a wrapped text block.
// Used for the free-text narrative fields.
func (d *doc) paragraph(label, text string) bool {
	if text == "" {
		return false
	}
	d.pdf.SetFont("Helvetica", "B", 9)
	d.pdf.CellFormat(labelColumn, rowHeight, d.tr(label)+":", "", 1, "L", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 9)
	d.pdf.MultiCell(0, rowHeight, d.tr(text), "", "L", false)
	d.pdf.Ln(2)
	return true
}

// subHeading renders a bold in-section heading line, e.g. the airflow
// method block titles.
func (d *doc) subHeading(text string) {
	d.pdf.SetFont("Helvetica", "B", 9)
	d.pdf.CellFormat(0, rowHeight, d.tr(text), "", 1, "L", false, 0, "")
}

// labeledList renders a right-aligned bold label next to a wrapped,
// comma-joined list (the accessories line).
func (d *doc) labeledList(label, text string) {
	d.pdf.SetFont("Helvetica", "B", 9)
	d.pdf.CellFormat(labelColumn, rowHeight, d.tr(label)+":", "", 0, "R", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 9)
	d.pdf.MultiCell(0, rowHeight, d.tr(text), "", "L", false)
}
