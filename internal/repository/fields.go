package repository

import "strings"

// FormSection maps one wizard section of the submission payload to the
// form field ids it may carry. Only whitelisted fields reach the
// database; field ids are kebab-case in the payload and snake_case as
// columns.
type FormSection struct {
	Key    string
	Fields []string
}

// FormSections is the authoritative submission whitelist, one entry per
// form wizard step.
var FormSections = []FormSection{
	{"startJSIS", []string{
		"jsis-type", "outdoor-model", "outdoor-serial", "indoor-model", "indoor-serial",
		"coil-model", "coil-serial", "service-date", "install-date",
	}},
	{"data1", []string{
		"tech-name", "tech-email", "tech-mobile", "company-name", "company-street",
		"company-city", "company-state", "company-zip", "company-phone",
		"homeowner-name", "homeowner-street", "homeowner-city", "homeowner-state", "homeowner-zip",
	}},
	{"data2", []string{
		"airflow-direction", "outdoor-temp", "indoor-db", "indoor-wb", "airflow-test-method",
		"return-static", "supply-static", "total-static", "return-temp-static",
		"supply-temp-static", "supply-wb-static", "cfm-static",
		"heating-voltage", "heating-amperage", "return-temp-rise", "supply-temp-rise",
		"supply-wb-rise", "measured-temp-rise", "elevation", "calc-cfm-temprise",
		"flowhood-method", "total-return-cfm", "total-supply-cfm",
		"return-temp-hood", "supply-temp-hood", "supply-wb-hood",
	}},
	{"data3", []string{
		"refrigerant-type", "refrigerant-other", "heatpump-test-mode",
		"liquid-pressure", "liquid-temp", "liquid-sat-temp", "subcooling",
		"vapor-pressure", "vapor-temp", "vapor-sat-temp", "superheat",
		"comp-suction-temp", "comp-discharge-temp",
		"outdoor-inlet-temp", "outdoor-discharge-temp",
		"drier-inlet-temp", "drier-discharge-temp",
		"indoor-inlet-temp", "indoor-discharge-temp",
	}},
	{"data4", []string{
		"lineset-length", "vapor-size", "liquid-size", "outdoor-position", "vertical-separation",
	}},
	{"data5", []string{
		"control-voltage", "voltage-phase",
		"supply-voltage-115", "supply-voltage-230-1ph",
		"comp-start-amps", "comp-run-amps", "comp-common-amps",
		"fan-amps-115", "fan-amps-230-1ph",
		"voltage-l1l2-230-3ph", "voltage-l2l3-230-3ph", "voltage-l3l1-230-3ph",
		"voltage-l1l2-460-3ph", "voltage-l2l3-460-3ph", "voltage-l3l1-460-3ph",
		"comp-l1-amps", "comp-l2-amps", "comp-l3-amps",
		"fan-amps-230-3ph", "fan-amps-460-3ph",
	}},
	{"data6", []string{
		"problem-summary", "current-fault-codes", "fault-code-history", "corrective-actions",
	}},
	{"data7", []string{
		"communicating-system", "software-outdoor", "software-indoor", "software-thermostat",
		"zone-control-system",
		"acc-filter", "acc-filter-type", "acc-sound-blanket", "acc-time-delay",
		"acc-crankcase-heater", "acc-energy-mgmt", "acc-filter-drier", "acc-hard-start",
		"acc-hot-gas-bypass", "acc-hot-water-recovery", "acc-low-ambient", "acc-pump-down",
		"acc-surge", "acc-thermostat", "acc-thermostat-model", "acc-other-check", "acc-other",
	}},
	{"data8", []string{
		"photo-outdoor", "outdoor-photo-na", "photo-indoor", "photo-additional",
	}},
}

// ColumnFor converts a kebab-case form field id to its database column.
func ColumnFor(fieldID string) string {
	return strings.ReplaceAll(fieldID, "-", "_")
}
