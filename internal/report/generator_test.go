package report

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ejsis-server/internal/models"
	"ejsis-server/internal/store"
)

func newTestGenerator(t *testing.T) (*Generator, string) {
	t.Helper()
	dir := t.TempDir()
	g := NewGenerator(
		store.NewPhotoStore(filepath.Join(dir, "uploads")),
		filepath.Join(dir, "assets"),
		filepath.Join(dir, "out"),
		zap.NewNop(),
	)
	g.now = func() time.Time { return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) }
	// Uncompressed output keeps content streams greppable.
	g.compress = false
	return g, dir
}

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
}

func generateToString(t *testing.T, g *Generator, rec models.Record) string {
	t.Helper()
	path, err := g.Generate(rec, 42)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func pageCount(pdf string) int {
	return strings.Count(pdf, "<</Type /Page") - strings.Count(pdf, "<</Type /Pages")
}

func TestGenerateHeatPumpTitleOnEveryPage(t *testing.T) {
	g, _ := newTestGenerator(t)
	pdf := generateToString(t, g, models.Record{
		"jsis_type": "heatpump",
		"tech_name": "Alex Romero",
	})

	assert.Equal(t, 2, pageCount(pdf), "data pages only, no photos")
	assert.Equal(t, 2, strings.Count(pdf, "Heat Pump Job Site Information Sheet"),
		"header chrome repeats on every page")
}

func TestGenerateUnknownTypeFallsBackToGenericTitle(t *testing.T) {
	g, _ := newTestGenerator(t)
	pdf := generateToString(t, g, models.Record{"jsis_type": "boiler"})
	assert.Contains(t, pdf, "eJSIS Report")
}

func TestGenerateOmitsEmptyElectricalSection(t *testing.T) {
	g, _ := newTestGenerator(t)
	pdf := generateToString(t, g, models.Record{
		"jsis_type": "ac",
		"tech_name": "Alex Romero",
	})
	assert.NotContains(t, pdf, "ELECTRICAL DATA")
	assert.NotContains(t, pdf, "AIR & AIRFLOW DATA", "airflow section omitted when no airflow fields")
	assert.Contains(t, pdf, "REFRIGERANT DATA", "refrigerant panel always renders")
	assert.Contains(t, pdf, "SUPERHEAT: --", "absent readings show the placeholder dash")
	assert.Contains(t, pdf, "SUBCOOLING: --")
}

func TestGenerateZeroReadingRenders(t *testing.T) {
	g, _ := newTestGenerator(t)
	pdf := generateToString(t, g, models.Record{
		"jsis_type": "ac",
		"indoor_wb": "0",
	})
	assert.Contains(t, pdf, "Indoor WB", `a "0" reading is present, not absent`)
}

func TestGenerateThreePhaseCompositeRow(t *testing.T) {
	g, _ := newTestGenerator(t)
	pdf := generateToString(t, g, models.Record{
		"jsis_type":            "ac",
		"voltage_l1l2_230_3ph": float64(230),
		"voltage_l2l3_230_3ph": float64(232),
		"voltage_l3l1_230_3ph": float64(231),
	})
	assert.Contains(t, pdf, "ELECTRICAL DATA")
	assert.Contains(t, pdf, "230 / 232 / 231 V")
	assert.Contains(t, pdf, "Voltage L1-L2 / L2-L3 / L3-L1")
	assert.NotContains(t, pdf, "Supply Voltage", "no per-leg or single-phase rows for a 3-phase record")
}

func TestGenerateAccessoriesLine(t *testing.T) {
	g, _ := newTestGenerator(t)
	pdf := generateToString(t, g, models.Record{
		"jsis_type":       "ac",
		"acc_filter":      float64(1),
		"acc_filter_type": "HEPA",
		"acc_surge":       float64(1),
	})
	// Parentheses are escaped inside PDF string literals.
	assert.Contains(t, pdf, `Air Filter \(HEPA\), Surge Protector`)
}

func TestGenerateNoAccessoriesOmitsSection(t *testing.T) {
	g, _ := newTestGenerator(t)
	pdf := generateToString(t, g, models.Record{
		"jsis_type":  "ac",
		"acc_filter": float64(0),
	})
	assert.NotContains(t, pdf, "ADDITIONAL INFO & ACCESSORIES")
}

func TestGeneratePhotoPages(t *testing.T) {
	g, dir := newTestGenerator(t)
	uploads := filepath.Join(dir, "uploads")
	writeTestPNG(t, filepath.Join(uploads, "42_outdoor.png"), 400, 300)
	writeTestPNG(t, filepath.Join(uploads, "42_additional_a.png"), 640, 480)
	writeTestPNG(t, filepath.Join(uploads, "42_additional_b.png"), 300, 500)

	rec := models.Record{
		"jsis_type":        "ac",
		"photo_outdoor":    "42_outdoor.png",
		"photo_additional": `["42_additional_a.png","42_additional_b.png"]`,
	}

	pdf := generateToString(t, g, rec)
	assert.Equal(t, 5, pageCount(pdf), "2 data pages + 3 photo pages")

	outdoor := strings.Index(pdf, "Outdoor Unit Nameplate")
	add1 := strings.Index(pdf, "Additional Photo 1")
	add2 := strings.Index(pdf, "Additional Photo 2")
	require.True(t, outdoor >= 0 && add1 >= 0 && add2 >= 0)
	assert.Less(t, outdoor, add1)
	assert.Less(t, add1, add2)
}

func TestGenerateSkipsMissingPhotoFile(t *testing.T) {
	g, dir := newTestGenerator(t)
	uploads := filepath.Join(dir, "uploads")
	writeTestPNG(t, filepath.Join(uploads, "42_outdoor.png"), 400, 300)
	writeTestPNG(t, filepath.Join(uploads, "42_additional_b.png"), 300, 500)

	rec := models.Record{
		"jsis_type":        "ac",
		"photo_outdoor":    "42_outdoor.png",
		"photo_additional": `["42_additional_a.png","42_additional_b.png"]`,
	}

	pdf := generateToString(t, g, rec)
	assert.Equal(t, 4, pageCount(pdf), "one missing file drops exactly one page")
	assert.NotContains(t, pdf, "Additional Photo 1", "missing photo renders no page")
	assert.Contains(t, pdf, "Additional Photo 2", "surviving photos keep their original labels")
}

func TestGenerateIsDeterministicForFixedClock(t *testing.T) {
	g, _ := newTestGenerator(t)
	rec := models.Record{
		"jsis_type":       "heatpump",
		"tech_name":       "Alex Romero",
		"vapor_pressure":  float64(118),
		"superheat":       float64(12),
		"liquid_pressure": float64(365),
		"subcooling":      float64(9),
	}

	path1, err := g.Generate(rec, 42)
	require.NoError(t, err)
	data1, err := os.ReadFile(path1)
	require.NoError(t, err)

	path2, err := g.Generate(rec, 42)
	require.NoError(t, err)
	data2, err := os.ReadFile(path2)
	require.NoError(t, err)

	assert.Equal(t, data1, data2, "identical record and clock produce identical bytes")
}

func TestGenerateArtifactNaming(t *testing.T) {
	g, _ := newTestGenerator(t)
	path, err := g.Generate(models.Record{"jsis_type": "ac"}, 7)
	require.NoError(t, err)
	assert.Equal(t, "JSIS_7_20250314_093000.pdf", filepath.Base(path))
}

func TestGenerateWithLogoAsset(t *testing.T) {
	g, dir := newTestGenerator(t)
	writeTestPNG(t, filepath.Join(dir, "assets", "ejsis_logo.png"), 200, 60)

	path, err := g.Generate(models.Record{"jsis_type": "gasfurnace"}, 9)
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerateOutputDirFailureIsSurfaced(t *testing.T) {
	g, dir := newTestGenerator(t)
	// Occupy the output path with a file so MkdirAll fails.
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))
	g.outputDir = blocked

	_, err := g.Generate(models.Record{"jsis_type": "ac"}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output directory")
}
