package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"ejsis-server/internal/models"
)

// PhotoResolver locates a stored photo file by its stored filename.
// Files that cannot be located are skipped, not errors.
type PhotoResolver interface {
	Resolve(filename string) (string, bool)
}

// Generator assembles the finished JSIS report: document metadata,
// header/footer chrome on every page, both data pages, and the photo
// appendix. One record in, one uniquely named PDF artifact out.
type Generator struct {
	photos    PhotoResolver
	assetsDir string
	outputDir string
	logger    *zap.Logger

	now      func() time.Time
	compress bool
}

func NewGenerator(photos PhotoResolver, assetsDir, outputDir string, logger *zap.Logger) *Generator {
	return &Generator{
		photos:    photos,
		assetsDir: assetsDir,
		outputDir: outputDir,
		logger:    logger,
		now:       time.Now,
		compress:  true,
	}
}

// Generate renders the record into a PDF artifact and returns its
// path. The filename embeds the record id and generation timestamp so
// concurrent generations for different records never collide. Output
// I/O failures are returned to the caller; no artifact exists when the
// error is non-nil.
func (g *Generator) Generate(rec models.Record, recordID int64) (string, error) {
	now := g.now()
	jsisType := rec.Str("jsis_type")
	title := DocumentTitle(jsisType)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(g.compress)
	pdf.SetCreationDate(now)

	pdf.SetCreator("eJSIS", true)
	pdf.SetTitle(fmt.Sprintf("JSIS Report #%d", recordID), true)
	author := rec.Str("tech_name")
	if author == "" {
		author = "Technician"
	}
	pdf.SetAuthor(author, true)

	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, breakMargin)
	pdf.AliasNbPages("")

	// The logo is optional chrome: header renders without it when the
	// asset is not on disk.
	logoPath := filepath.Join(g.assetsDir, "ejsis_logo.png")
	if _, err := os.Stat(logoPath); err != nil {
		logoPath = ""
	}

	pdf.SetHeaderFuncMode(func() {
		if logoPath != "" {
			pdf.ImageOptions(logoPath, 10, 6, 40, 0, false, gofpdf.ImageOptions{}, 0, "")
		}
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetXY(55, 10)
		pdf.CellFormat(0, 10, title, "", 0, "L", false, 0, "")
		pdf.SetLineWidth(0.5)
		pdf.SetDrawColor(accentRed[0], accentRed[1], accentRed[2])
		pdf.Line(10, 22, 200, 22)
	}, true)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(60, 10, fmt.Sprintf("Record ID: %d", recordID), "", 0, "L", false, 0, "")
		pdf.CellFormat(70, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.CellFormat(60, 10, "Generated: "+now.Format("2006-01-02 15:04"), "", 0, "R", false, 0, "")
	})

	d := &doc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	composePage(d, rec, page1Sections)
	composePage(d, rec, page2Sections)
	g.renderPhotoPages(d, rec)

	if err := pdf.Error(); err != nil {
		return "", fmt.Errorf("failed to compose report for record %d: %w", recordID, err)
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := fmt.Sprintf("JSIS_%d_%s.pdf", recordID, now.Format("20060102_150405"))
	path := filepath.Join(g.outputDir, filename)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write report artifact: %w", err)
	}

	g.logger.Info("Generated JSIS report",
		zap.Int64("record_id", recordID),
		zap.String("jsis_type", jsisType),
		zap.String("path", path),
	)
	return path, nil
}

// renderPhotoPages appends one page per locatable photo, preserving
// order and labels even when some backing files are gone.
func (g *Generator) renderPhotoPages(d *doc, rec models.Record) {
	for _, ref := range collectPhotos(rec) {
		path, ok := g.photos.Resolve(ref.file)
		if !ok {
			g.logger.Warn("Skipping missing report photo", zap.String("file", ref.file))
			continue
		}
		if !d.renderPhotoPage(path, ref.label) {
			g.logger.Warn("Skipping unreadable report photo", zap.String("file", ref.file))
		}
	}
}
