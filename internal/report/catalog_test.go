package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupFallsBackToRawCode(t *testing.T) {
	assert.Equal(t, "208-230V Three Phase", lookup(voltagePhases, "230-3ph"))
	assert.Equal(t, "999-9ph", lookup(voltagePhases, "999-9ph"), "unknown codes pass through")
	assert.Equal(t, "", lookup(voltagePhases, ""))
}

func TestFormatEquipmentType(t *testing.T) {
	assert.Equal(t, "Air Conditioning System", FormatEquipmentType("ac"))
	assert.Equal(t, "Heat Pump System", FormatEquipmentType("heatpump"))
	assert.Equal(t, "Gas Furnace", FormatEquipmentType("gasfurnace"))
	assert.Equal(t, "geothermal", FormatEquipmentType("geothermal"))
}

func TestDocumentTitle(t *testing.T) {
	assert.Equal(t, "Heat Pump Job Site Information Sheet", DocumentTitle("heatpump"))
	assert.Equal(t, "A/C Job Site Information Sheet", DocumentTitle("ac"))
	assert.Equal(t, "Gas Furnace Job Site Information Sheet", DocumentTitle("gasfurnace"))
	assert.Equal(t, "eJSIS Report", DocumentTitle("boiler"), "unrecognized types fall back to the generic title")
	assert.Equal(t, "eJSIS Report", DocumentTitle(""))
}

func TestAccessoryDefsOrderIsFixed(t *testing.T) {
	assert.Equal(t, "acc_filter", accessoryDefs[0].key)
	assert.Equal(t, "acc_thermostat", accessoryDefs[1].key)
	assert.Len(t, accessoryDefs, 13)
	for _, def := range accessoryDefs[2:] {
		assert.Empty(t, def.qualifierKey, "only filter and thermostat carry qualifiers")
	}
}
