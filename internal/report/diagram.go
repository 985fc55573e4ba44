package report

// Refrigerant-cycle panel geometry (mm).
const (
	diagramX      = 15
	panelWidth    = 85
	panelHeight   = 45
	panelGap      = 10
	calloutOffset = 30
	calloutHeight = 12
)

// refrigerantReadings holds one side of the cycle. Superheat/subcooling
// are derived upstream; the renderer only displays them.
type refrigerantReadings struct {
	pressure string
	lineTemp string
	satTemp  string
	derived  string // superheat (vapor) or subcooling (liquid)
}

// placeholder substitutes the explicit dash the panel shows for absent
// readings. The panels have fixed geometry, so this is the one place
// absence renders visibly instead of suppressing the row.
func placeholder(v string) string {
	if v == "" {
		return "--"
	}
	return v
}

// drawRefrigerantDiagram draws the two-box vapor/liquid panel pair at
// the current cursor position and advances the cursor past both panels.
func (d *doc) drawRefrigerantDiagram(vapor, liquid refrigerantReadings) {
	startY := d.pdf.GetY()

	d.drawRefrigerantPanel(diagramX, startY, "VAPOR LINE (Low Side)",
		"SUPERHEAT", vapor, accentBlue, [3]int{230, 240, 250})
	d.drawRefrigerantPanel(diagramX+panelWidth+panelGap, startY, "LIQUID LINE (High Side)",
		"SUBCOOLING", liquid, accentRed, [3]int{255, 235, 235})

	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.SetY(startY + panelHeight + 5)
}

func (d *doc) drawRefrigerantPanel(x, y float64, title, derivedLabel string, r refrigerantReadings, accent, fill [3]int) {
	d.pdf.SetDrawColor(accent[0], accent[1], accent[2])
	d.pdf.SetLineWidth(0.5)
	d.pdf.Rect(x, y, panelWidth, panelHeight, "D")

	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.SetTextColor(accent[0], accent[1], accent[2])
	d.pdf.SetXY(x+2, y+2)
	d.pdf.CellFormat(panelWidth-4, 6, d.tr(title), "", 1, "C", false, 0, "")

	d.pdf.SetTextColor(0, 0, 0)
	d.panelRow(x, y+10, "Gauge Pressure:", placeholder(r.pressure)+" psig")
	d.panelRow(x, y+16, "Line Temp:", placeholder(r.lineTemp)+" °F")
	d.panelRow(x, y+22, "Sat Temp:", placeholder(r.satTemp)+" °F")

	// Highlighted derived-result callout.
	d.pdf.SetFillColor(fill[0], fill[1], fill[2])
	d.pdf.Rect(x+5, y+calloutOffset, panelWidth-10, calloutHeight, "F")
	d.pdf.SetFont("Helvetica", "B", 11)
	d.pdf.SetTextColor(accent[0], accent[1], accent[2])
	d.pdf.SetXY(x+5, y+calloutOffset+2)
	d.pdf.CellFormat(panelWidth-10, 8, d.tr(derivedLabel+": "+placeholder(r.derived)+" °F"), "", 0, "C", false, 0, "")
}

func (d *doc) panelRow(x, y float64, label, value string) {
	d.pdf.SetFont("Helvetica", "", 9)
	d.pdf.SetXY(x+5, y)
	d.pdf.CellFormat(35, rowHeight, d.tr(label), "", 0, "R", false, 0, "")
	d.pdf.SetFont("Helvetica", "B", 9)
	d.pdf.CellFormat(40, rowHeight, d.tr(value), "", 1, "L", false, 0, "")
}
