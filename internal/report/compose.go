package report

import (
	"image"
	"os"
	"strconv"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/jung-kurt/gofpdf"

	"ejsis-server/internal/models"
)

// section is one entry of the fixed page layout: a visibility predicate
// over the record plus the routine that draws it. Sections are
// evaluated strictly top to bottom; the order of these tables is the
// authoritative document structure.
type section struct {
	when   func(models.Record) bool
	render func(*doc, models.Record)
}

func always(models.Record) bool { return true }

// groupPresent gates a section on at least one of its fields being
// populated. Absent groups render nothing: no banner, no blank rows.
func groupPresent(keys ...string) func(models.Record) bool {
	return func(rec models.Record) bool { return rec.AnyPresent(keys...) }
}

var electricalFields = []string{
	"control_voltage", "voltage_phase",
	"supply_voltage_115", "supply_voltage_230_1ph",
	"comp_start_amps", "comp_run_amps", "comp_common_amps",
	"fan_amps_115", "fan_amps_230_1ph",
	"voltage_l1l2_230_3ph", "voltage_l2l3_230_3ph", "voltage_l3l1_230_3ph",
	"voltage_l1l2_460_3ph", "voltage_l2l3_460_3ph", "voltage_l3l1_460_3ph",
	"comp_l1_amps", "comp_l2_amps", "comp_l3_amps",
	"fan_amps_230_3ph", "fan_amps_460_3ph",
}

var airflowFields = []string{
	"airflow_direction", "airflow_test_method", "outdoor_temp", "indoor_db", "indoor_wb",
	"return_static", "supply_static", "total_static",
	"return_temp_static", "supply_temp_static", "supply_wb_static", "cfm_static",
	"heating_voltage", "heating_amperage", "return_temp_rise", "supply_temp_rise",
	"supply_wb_rise", "measured_temp_rise", "elevation", "calc_cfm_temprise",
	"flowhood_method", "total_return_cfm", "total_supply_cfm",
	"return_temp_hood", "supply_temp_hood", "supply_wb_hood",
}

var lineTempFields = []string{
	"comp_suction_temp", "comp_discharge_temp",
	"outdoor_inlet_temp", "outdoor_discharge_temp",
	"drier_inlet_temp", "drier_discharge_temp",
	"indoor_inlet_temp", "indoor_discharge_temp",
}

var page1Sections = []section{
	{always, renderServiceInfo},
	{always, renderHomeowner},
	{always, renderContractor},
	{always, renderEquipment},
	{always, renderProblemActions},
	{groupPresent(electricalFields...), renderElectrical},
	{hasAccessories, renderAccessories},
}

var page2Sections = []section{
	{groupPresent(airflowFields...), renderAirflow},
	{always, renderRefrigerant},
	{groupPresent("lineset_length", "vapor_size", "liquid_size", "outdoor_position", "vertical_separation"), renderLineSet},
	{groupPresent(lineTempFields...), renderLineTemps},
}

func composePage(d *doc, rec models.Record, sections []section) {
	d.addPage()
	for _, s := range sections {
		if s.when(rec) {
			s.render(d, rec)
		}
	}
}

func renderServiceInfo(d *doc, rec models.Record) {
	d.sectionHeader("SERVICE INFORMATION")
	d.dataRowTwoCol("Service Date", rec.Str("service_date"), "Install Date", rec.Str("install_date"), "", "")
	d.dataRow("JSIS Type", FormatEquipmentType(rec.Str("jsis_type")), "")
	if rec.Str("jsis_type") == models.TypeHeatPump && rec.Present("heatpump_test_mode") {
		d.dataRow("Test Mode", ucfirst(rec.Str("heatpump_test_mode"))+" Mode", "")
	}
	d.ln(3)
}

func renderHomeowner(d *doc, rec models.Record) {
	d.sectionHeader("HOMEOWNER")
	d.dataRow("Name", rec.Str("homeowner_name"), "")
	d.dataRow("Address", rec.Str("homeowner_street"), "")
	d.dataRow("", cityStateZip(rec, "homeowner_city", "homeowner_state", "homeowner_zip"), "")
	d.ln(3)
}

func renderContractor(d *doc, rec models.Record) {
	d.sectionHeader("SERVICING CONTRACTOR")
	d.dataRow("Technician", rec.Str("tech_name"), "")
	d.dataRow("Email", rec.Str("tech_email"), "")
	d.dataRow("Mobile", rec.Str("tech_mobile"), "")
	d.dataRow("Company", rec.Str("company_name"), "")
	d.dataRow("Address", rec.Str("company_street"), "")
	d.dataRow("", cityStateZip(rec, "company_city", "company_state", "company_zip"), "")
	d.dataRow("Phone", rec.Str("company_phone"), "")
	d.ln(3)
}

func renderEquipment(d *doc, rec models.Record) {
	d.sectionHeader("EQUIPMENT")
	d.dataRowTwoCol("Outdoor Model", rec.Str("outdoor_model"), "Serial", rec.Str("outdoor_serial"), "", "")
	d.dataRowTwoCol("Indoor Model", rec.Str("indoor_model"), "Serial", rec.Str("indoor_serial"), "", "")
	d.dataRowTwoCol("Coil Model", rec.Str("coil_model"), "Serial", rec.Str("coil_serial"), "", "")
	d.ln(3)
}

func renderProblemActions(d *doc, rec models.Record) {
	d.sectionHeader("PROBLEM & ACTIONS")
	d.paragraph("Problem Summary", rec.Str("problem_summary"))
	d.dataRow("Current Fault Codes", rec.Str("current_fault_codes"), "")
	d.dataRow("Fault Code History", rec.Str("fault_code_history"), "")
	d.paragraph("Corrective Actions", rec.Str("corrective_actions"))
	d.ln(3)
}

func renderElectrical(d *doc, rec models.Record) {
	d.sectionHeader("ELECTRICAL DATA")
	d.dataRowTwoCol("Control Voltage", rec.Str("control_voltage"),
		"Voltage/Phase", lookup(voltagePhases, rec.Str("voltage_phase")), "V", "")

	// Single phase supply voltages use disjoint columns per nominal rating.
	d.dataRow("Supply Voltage (115V)", rec.Str("supply_voltage_115"), "V")
	d.dataRow("Supply Voltage (230V)", rec.Str("supply_voltage_230_1ph"), "V")

	d.dataRowTwoCol("Comp Start Amps", rec.Str("comp_start_amps"), "Run Amps", rec.Str("comp_run_amps"), "A", "A")
	d.dataRow("Comp Common Amps", rec.Str("comp_common_amps"), "A")

	// Three-phase voltages render as one composite row, never per leg.
	// The 230V-3ph columns take precedence over 460V-3ph when both are
	// somehow populated (observed legacy precedence).
	if rec.AnyPresent("voltage_l1l2_230_3ph", "voltage_l1l2_460_3ph") {
		v1 := coalesce(rec, "voltage_l1l2_230_3ph", "voltage_l1l2_460_3ph")
		v2 := coalesce(rec, "voltage_l2l3_230_3ph", "voltage_l2l3_460_3ph")
		v3 := coalesce(rec, "voltage_l3l1_230_3ph", "voltage_l3l1_460_3ph")
		d.dataRow("Voltage L1-L2 / L2-L3 / L3-L1", v1+" / "+v2+" / "+v3, "V")
	}

	if rec.Present("comp_l1_amps") {
		d.dataRow("Comp Amps L1 / L2 / L3",
			rec.Str("comp_l1_amps")+" / "+rec.Str("comp_l2_amps")+" / "+rec.Str("comp_l3_amps"), "A")
	}

	d.dataRow("Condenser Fan Amps",
		coalesce(rec, "fan_amps_115", "fan_amps_230_1ph", "fan_amps_230_3ph", "fan_amps_460_3ph"), "A")
	d.ln(3)
}

func hasAccessories(rec models.Record) bool { return len(accessoriesList(rec)) > 0 }

// accessoriesList builds the ordered display phrases for the set
// toggles, with the filter and thermostat qualifiers inserted
// parenthetically.
func accessoriesList(rec models.Record) []string {
	var list []string
	for _, def := range accessoryDefs {
		if !rec.Truthy(def.key) {
			continue
		}
		phrase := def.phrase
		if def.qualifierKey != "" && rec.Present(def.qualifierKey) {
			phrase += " (" + rec.Str(def.qualifierKey) + ")"
		}
		list = append(list, phrase)
	}
	return list
}

func renderAccessories(d *doc, rec models.Record) {
	d.sectionHeader("ADDITIONAL INFO & ACCESSORIES")

	if rec.Truthy("communicating_system") {
		d.dataRow("Communicating System", "Yes", "")
		d.dataRow("Outdoor Software", rec.Str("software_outdoor"), "")
		d.dataRow("Indoor Software", rec.Str("software_indoor"), "")
		d.dataRow("Thermostat Software", rec.Str("software_thermostat"), "")
	}
	if rec.Truthy("zone_control_system") {
		d.dataRow("Zone Control System", "Yes", "")
	}

	d.labeledList("Accessories", strings.Join(accessoriesList(rec), ", "))
	d.dataRow("Other", rec.Str("acc_other"), "")
}

func renderAirflow(d *doc, rec models.Record) {
	d.sectionHeader("AIR & AIRFLOW DATA")
	d.dataRowTwoCol("Airflow Direction", lookup(airflowDirections, rec.Str("airflow_direction")),
		"Test Method", lookup(testMethods, rec.Str("airflow_test_method")), "", "")
	d.dataRowTwoCol("Outdoor Temp", rec.Str("outdoor_temp"), "Indoor DB", rec.Str("indoor_db"), "°F", "°F")
	d.dataRow("Indoor WB", rec.Str("indoor_wb"), "°F")
	d.ln(2)

	if rec.AnyPresent("return_static", "supply_static") {
		d.subHeading("Static Pressure Method:")
		d.dataRowTwoCol("Return Static", rec.Str("return_static"), "Supply Static", rec.Str("supply_static"), "in.w.c.", "in.w.c.")
		d.dataRow("Total ESP", rec.Str("total_static"), "in.w.c.")
		d.dataRowTwoCol("Return Temp", rec.Str("return_temp_static"), "Supply DB", rec.Str("supply_temp_static"), "°F", "°F")
		d.dataRowTwoCol("Supply WB", rec.Str("supply_wb_static"), "CFM", rec.Str("cfm_static"), "°F", "")
	}

	if rec.AnyPresent("return_temp_rise", "supply_temp_rise") {
		d.subHeading("Temperature Rise Method:")
		d.dataRowTwoCol("Heating Voltage", rec.Str("heating_voltage"), "Amperage", rec.Str("heating_amperage"), "V", "A")
		d.dataRowTwoCol("Return Temp", rec.Str("return_temp_rise"), "Supply DB", rec.Str("supply_temp_rise"), "°F", "°F")
		d.dataRowTwoCol("Supply WB", rec.Str("supply_wb_rise"), "Temp Rise", rec.Str("measured_temp_rise"), "°F", "°F")
		d.dataRowTwoCol("Elevation", rec.Str("elevation"), "Calc CFM", rec.Str("calc_cfm_temprise"), "ft", "")
	}

	if rec.AnyPresent("total_return_cfm", "total_supply_cfm") {
		method := rec.Str("flowhood_method")
		if method == "" {
			method = "uncorrected"
		}
		d.subHeading("Flowhood Method (" + ucfirst(method) + "):")
		d.dataRowTwoCol("Return CFM", rec.Str("total_return_cfm"), "Supply CFM", rec.Str("total_supply_cfm"), "", "")
		d.dataRowTwoCol("Return Temp", rec.Str("return_temp_hood"), "Supply DB", rec.Str("supply_temp_hood"), "°F", "°F")
		d.dataRow("Supply WB", rec.Str("supply_wb_hood"), "°F")
	}
	d.ln(5)
}

func renderRefrigerant(d *doc, rec models.Record) {
	d.sectionHeader("REFRIGERANT DATA")
	refType := rec.Str("refrigerant_type")
	if rec.Present("refrigerant_other") {
		refType += " (" + rec.Str("refrigerant_other") + ")"
	}
	d.dataRow("Refrigerant Type", refType, "")
	d.ln(3)

	d.drawRefrigerantDiagram(
		refrigerantReadings{
			pressure: rec.Str("vapor_pressure"),
			lineTemp: rec.Str("vapor_temp"),
			satTemp:  rec.Str("vapor_sat_temp"),
			derived:  rec.Str("superheat"),
		},
		refrigerantReadings{
			pressure: rec.Str("liquid_pressure"),
			lineTemp: rec.Str("liquid_temp"),
			satTemp:  rec.Str("liquid_sat_temp"),
			derived:  rec.Str("subcooling"),
		},
	)
	d.ln(5)
}

func renderLineSet(d *doc, rec models.Record) {
	d.sectionHeader("LINE SET DETAILS")
	d.dataRowTwoCol("Total Length", rec.Str("lineset_length"), "Vapor Size", rec.Str("vapor_size"), "ft", "in")
	d.dataRowTwoCol("Liquid Size", rec.Str("liquid_size"),
		"Position", lookup(outdoorPositions, rec.Str("outdoor_position")), "in", "")
	d.dataRow("Vertical Separation", rec.Str("vertical_separation"), "ft")
}

func renderLineTemps(d *doc, rec models.Record) {
	d.ln(3)
	d.sectionHeader("DETAILED LINE TEMPERATURES")
	d.dataRowTwoCol("Comp Suction", rec.Str("comp_suction_temp"), "Comp Discharge", rec.Str("comp_discharge_temp"), "°F", "°F")
	d.dataRowTwoCol("Outdoor Inlet", rec.Str("outdoor_inlet_temp"), "Outdoor Discharge", rec.Str("outdoor_discharge_temp"), "°F", "°F")
	d.dataRowTwoCol("Drier Inlet", rec.Str("drier_inlet_temp"), "Drier Discharge", rec.Str("drier_discharge_temp"), "°F", "°F")
	d.dataRowTwoCol("Indoor Inlet", rec.Str("indoor_inlet_temp"), "Indoor Discharge", rec.Str("indoor_discharge_temp"), "°F", "°F")
}

// Photo appendix.

// photo page image bounding box (mm), centered on the 210mm A4 width.
const (
	photoMaxWidth  = 190
	photoMaxHeight = 230
	pageWidth      = 210
)

type photoRef struct {
	file  string
	label string
}

// collectPhotos returns the ordered photo appendix: outdoor nameplate,
// indoor nameplate, then each additional photo labeled by its 1-based
// position.
func collectPhotos(rec models.Record) []photoRef {
	var photos []photoRef
	if rec.Present("photo_outdoor") {
		photos = append(photos, photoRef{rec.Str("photo_outdoor"), "Outdoor Unit Nameplate"})
	}
	if rec.Present("photo_indoor") {
		photos = append(photos, photoRef{rec.Str("photo_indoor"), "Indoor Unit Nameplate"})
	}
	for i, file := range rec.AdditionalPhotos() {
		photos = append(photos, photoRef{file, "Additional Photo " + strconv.Itoa(i+1)})
	}
	return photos
}

// renderPhotoPage draws one photo on its own page: banner label, image
// scaled to fit the bounding box preserving aspect ratio, centered
// horizontally. Returns false without touching the document when the
// backing file is missing or unreadable; partial photo sets are
// expected, not errors.
func (d *doc) renderPhotoPage(path, label string) bool {
	w, h, ok := imageSize(path)
	if !ok {
		return false
	}

	d.addPage()
	d.sectionHeader(label)

	ratio := photoMaxWidth / w
	if r := photoMaxHeight / h; r < ratio {
		ratio = r
	}
	newW := w * ratio
	newH := h * ratio

	x := (pageWidth - newW) / 2
	y := d.pdf.GetY() + 5
	d.pdf.ImageOptions(path, x, y, newW, newH, false,
		gofpdf.ImageOptions{}, 0, "")
	return true
}

// imageSize probes the pixel dimensions of a stored photo. A file the
// PDF backend cannot embed fails the probe and the photo is skipped.
func imageSize(path string) (float64, float64, bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, false
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, false
	}
	return float64(cfg.Width), float64(cfg.Height), true
}

func cityStateZip(rec models.Record, cityKey, stateKey, zipKey string) string {
	city, state, zip := rec.Str(cityKey), rec.Str(stateKey), rec.Str(zipKey)
	if city == "" && state == "" && zip == "" {
		return ""
	}
	line := city
	if state != "" {
		if line != "" {
			line += ", "
		}
		line += state
	}
	if zip != "" {
		if line != "" {
			line += " "
		}
		line += zip
	}
	return line
}

// coalesce returns the first present field's display value.
func coalesce(rec models.Record, keys ...string) string {
	for _, k := range keys {
		if rec.Present(k) {
			return rec.Str(k)
		}
	}
	return ""
}

func ucfirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
