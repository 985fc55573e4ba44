package report

// Enumeration tables for coded form values. Formatting is best-effort
// decoration, not validation: a code with no table entry is displayed
// unchanged.

func lookup(table map[string]string, code string) string {
	if label, ok := table[code]; ok {
		return label
	}
	return code
}

var equipmentNames = map[string]string{
	"ac":         "Air Conditioning System",
	"heatpump":   "Heat Pump System",
	"gasfurnace": "Gas Furnace",
}

// Per-page document titles keyed by equipment type. The generic
// "eJSIS Report" fallback covers unrecognized or missing types.
var documentTitles = map[string]string{
	"ac":         "A/C Job Site Information Sheet",
	"heatpump":   "Heat Pump Job Site Information Sheet",
	"gasfurnace": "Gas Furnace Job Site Information Sheet",
}

var voltagePhases = map[string]string{
	"115-1ph": "115V Single Phase",
	"230-1ph": "208-230V Single Phase",
	"230-3ph": "208-230V Three Phase",
	"460-3ph": "460V Three Phase",
}

var airflowDirections = map[string]string{
	"upflow":           "Upflow",
	"downflow":         "Downflow",
	"horizontal-left":  "Horizontal Left",
	"horizontal-right": "Horizontal Right",
}

var testMethods = map[string]string{
	"static":   "Static Pressure",
	"temprise": "Temperature Rise",
	"flowhood": "Flowhood",
}

var outdoorPositions = map[string]string{
	"same":  "Same Level",
	"above": "Above Indoor",
	"below": "Below Indoor",
}

// FormatEquipmentType returns the full equipment name for a jsis_type code.
func FormatEquipmentType(code string) string { return lookup(equipmentNames, code) }

// DocumentTitle returns the per-page title for a jsis_type code,
// falling back to the generic report title.
func DocumentTitle(code string) string {
	if t, ok := documentTitles[code]; ok {
		return t
	}
	return "eJSIS Report"
}

// accessoryDef maps one boolean toggle column to its display phrase.
// qualifierKey, when non-empty, names a free-text column appended
// parenthetically ("Air Filter (HEPA)").
type accessoryDef struct {
	key          string
	phrase       string
	qualifierKey string
}

// accessoryDefs fixes the display order of the accessories line.
var accessoryDefs = []accessoryDef{
	{"acc_filter", "Air Filter", "acc_filter_type"},
	{"acc_thermostat", "Thermostat", "acc_thermostat_model"},
	{"acc_surge", "Surge Protector", ""},
	{"acc_crankcase_heater", "Crankcase Heater", ""},
	{"acc_hard_start", "Hard Start Kit", ""},
	{"acc_filter_drier", "Filter Drier", ""},
	{"acc_sound_blanket", "Compressor Sound Blanket", ""},
	{"acc_low_ambient", "Low Ambient Kit", ""},
	{"acc_time_delay", "Compressor Time Delay", ""},
	{"acc_energy_mgmt", "Energy Management", ""},
	{"acc_hot_gas_bypass", "Hot Gas Bypass", ""},
	{"acc_hot_water_recovery", "Hot Water Recovery", ""},
	{"acc_pump_down", "Pump Down Kit", ""},
}
