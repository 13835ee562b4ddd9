package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	"github.com/johnquangdev/lti-omt/internal/usecase/shape"
	"github.com/johnquangdev/lti-omt/internal/usecase/stats"
	"github.com/johnquangdev/lti-omt/pkg/config"
)

const (
	ReportTitle    = "LTI OMT Meeting Report"
	ReportSubtitle = "Long-Term Isolation Review"

	// PDFSuccessMessage is returned by a fully successful export
	PDFSuccessMessage = "PDF downloaded successfully!"

	pageWidth  = 210.0
	pageHeight = 297.0
	lineHeight = 6.0
	rowHeight  = 7.0
)

// summaryColumn is one column of the isolation summary table
type summaryColumn struct {
	title string
	width float64 // share of the 170mm reference content width
	limit int
	value func(IsolationDetail) string
}

var summaryColumns = []summaryColumn{
	{"ID", 30, 16, func(d IsolationDetail) string { return d.ID }},
	{"Description", 60, 40, func(d IsolationDetail) string { return d.Description }},
	{"Risk", 20, 10, func(d IsolationDetail) string { return d.RiskLevel }},
	{"Age", 30, 16, func(d IsolationDetail) string { return d.Age }},
	{"MOC", 15, 5, func(d IsolationDetail) string { return d.MOCRequired }},
	{"Action", 15, 5, func(d IsolationDetail) string { return d.ActionRequired() }},
}

// Result is the outcome of a PDF export; failures are reported here, never raised
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	*Artifact
	PageCount  int  `json:"pageCount,omitempty"`
	Diagnostic bool `json:"diagnostic,omitempty"`
}

// PDFExporter renders meeting records as paginated A4 reports
type PDFExporter struct {
	cfg    config.ExportConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewPDFExporter creates a new PDF exporter
func NewPDFExporter(cfg config.ExportConfig, logger *zap.Logger) *PDFExporter {
	return &PDFExporter{cfg: cfg, logger: logger, now: time.Now}
}

// Export normalizes a raw meeting record and renders it
func (e *PDFExporter) Export(ctx context.Context, raw []byte) Result {
	m, err := shape.Normalize(raw)
	if err != nil {
		return Result{Success: false, Message: fmt.Sprintf("Error generating PDF: %v", err)}
	}
	return e.ExportMeeting(ctx, m)
}

// ExportMeeting renders a normalized meeting
func (e *PDFExporter) ExportMeeting(ctx context.Context, m *entities.Meeting) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("PDF export panicked", zap.Any("panic", r), zap.String("date", m.Date))
			res = Result{Success: false, Message: fmt.Sprintf("Error generating PDF: %v", r)}
		}
	}()

	if err := ctx.Err(); err != nil {
		return Result{Success: false, Message: fmt.Sprintf("Error generating PDF: %v", err)}
	}

	now := e.now()
	r := newReport(e.cfg, now)
	r.header()
	r.meetingInfo(m)
	r.statistics(m)
	r.warnings(m)
	diagnostic := r.isolations(m)

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		e.logger.Error("PDF export failed", zap.Error(err), zap.String("date", m.Date))
		return Result{Success: false, Message: fmt.Sprintf("Error generating PDF: %v", err)}
	}

	artifact := &Artifact{
		Filename:    Filename(m.Date, "pdf", now),
		ContentType: ContentTypePDF,
		Content:     buf.Bytes(),
		MeetingDate: m.Date,
	}
	e.logger.Info("PDF exported",
		zap.String("filename", artifact.Filename),
		zap.Int("pages", r.pdf.PageCount()),
		zap.String("shape", string(m.Shape)),
	)
	return Result{
		Success:    true,
		Message:    PDFSuccessMessage,
		Artifact:   artifact,
		PageCount:  r.pdf.PageCount(),
		Diagnostic: diagnostic,
	}
}

// report holds the layout state of one document
type report struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	margin float64
	width  float64
	now    time.Time
}

func newReport(cfg config.ExportConfig, now time.Time) *report {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(cfg.PageMargin, cfg.PageMargin, cfg.PageMargin)
	pdf.SetAutoPageBreak(false, cfg.PageMargin)
	pdf.SetCompression(cfg.Compress)
	pdf.SetTitle(ReportTitle, true)
	pdf.SetAuthor(cfg.Author, true)
	pdf.SetCreator(cfg.Author, true)
	pdf.SetCreationDate(now)
	pdf.AddPage()

	return &report{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		margin: cfg.PageMargin,
		width:  pageWidth - 2*cfg.PageMargin,
		now:    now,
	}
}

// ensureSpace starts a new page when a block of height h would cross the bottom margin
func (r *report) ensureSpace(h float64) bool {
	if r.pdf.GetY()+h <= pageHeight-r.margin {
		return false
	}
	r.pdf.AddPage()
	return true
}

func (r *report) heading(text string) {
	r.ensureSpace(2*lineHeight + 4)
	r.pdf.Ln(4)
	r.pdf.SetFont("Helvetica", "B", 13)
	r.pdf.CellFormat(r.width, lineHeight+2, r.tr(text), "", 1, "L", false, 0, "")
	r.pdf.SetFont("Helvetica", "", 10)
}

// line writes wrapped text, breaking pages between wrapped lines
func (r *report) line(text string) {
	for _, part := range r.pdf.SplitLines([]byte(r.tr(text)), r.width) {
		r.ensureSpace(lineHeight)
		r.pdf.CellFormat(r.width, lineHeight, string(part), "", 1, "L", false, 0, "")
	}
}

func (r *report) field(label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	r.line(label + ": " + value)
}

func (r *report) header() {
	r.pdf.SetFont("Helvetica", "B", 18)
	r.pdf.CellFormat(r.width, 10, r.tr(ReportTitle), "", 1, "C", false, 0, "")
	r.pdf.SetFont("Helvetica", "", 12)
	r.pdf.CellFormat(r.width, 7, r.tr(ReportSubtitle), "", 1, "C", false, 0, "")

	y := r.pdf.GetY() + 2
	r.pdf.SetLineWidth(0.5)
	r.pdf.Line(r.margin, y, pageWidth-r.margin, y)
	r.pdf.SetLineWidth(0.2)
	r.pdf.SetY(y + 4)
}

func (r *report) meetingInfo(m *entities.Meeting) {
	r.heading("Meeting Information")
	r.line("Meeting Date: " + OrNA(m.Date))
	attendees := Placeholder
	if len(m.Attendees) > 0 {
		attendees = strings.Join(m.Attendees, ", ")
	}
	r.line("Attendees: " + attendees)
	r.line("Generated: " + r.now.Format("2006-01-02 15:04"))
	r.line(fmt.Sprintf("Total Isolations: %d", m.IsolationCount()))
}

func (r *report) statistics(m *entities.Meeting) {
	data, ok := stats.FromMeeting(m)
	if !ok {
		return
	}
	summary := data.ExecutiveSummary

	r.heading("Meeting Statistics")
	r.line(fmt.Sprintf("Total Isolations Reviewed: %d", summary.TotalIsolationsReviewed))
	r.line(fmt.Sprintf("Responses Recorded: %d", summary.ReviewedCount))
	r.line(fmt.Sprintf("Critical Findings: %d", summary.CriticalFindings))
	r.line(fmt.Sprintf("Action Items Generated: %d", summary.ActionItemsGenerated))
	r.line(fmt.Sprintf("Meeting Efficiency Score: %d%%", summary.MeetingEfficiencyScore))

	parts := make([]string, 0, len(entities.RiskLevels))
	for _, level := range entities.RiskLevels {
		bucket := data.RiskAnalysis.Distribution[level]
		parts = append(parts, fmt.Sprintf("%s: %d (%.1f%%)", level, bucket.Count, bucket.Percentage))
	}
	r.line("Risk Distribution: " + strings.Join(parts, ", "))
}

// warnings lists the related-isolation warnings stored with the record
func (r *report) warnings(m *entities.Meeting) {
	if m.MeetingData == nil || len(m.MeetingData.ExecutiveSummary.RelatedIsolationWarnings) == 0 {
		return
	}

	r.heading("Related Isolation Warnings")
	for _, w := range m.MeetingData.ExecutiveSummary.RelatedIsolationWarnings {
		text := fmt.Sprintf("- %s", OrNA(w.IsolationID))
		if w.IsolationDescription != "" {
			text += " (" + w.IsolationDescription + ")"
		}
		text += fmt.Sprintf(": %d related isolation(s)", w.RelatedCount)
		if len(w.RelatedIDs) > 0 {
			text += ": " + strings.Join(w.RelatedIDs, ", ")
		}
		r.line(text)
	}
}

// isolations renders the summary table and one section per isolation.
// It reports whether the diagnostic placeholder was emitted instead.
func (r *report) isolations(m *entities.Meeting) bool {
	details := BuildDetails(m, r.now)

	r.heading("Isolation Summary")
	r.tableHeader()

	if len(details) == 0 {
		keys := Placeholder
		if len(m.TopLevelKeys) > 0 {
			keys = strings.Join(m.TopLevelKeys, ", ")
		}
		r.pdf.SetFont("Helvetica", "I", 9)
		r.pdf.MultiCell(r.width, rowHeight, r.tr("No isolation data found. Record keys: "+keys), "1", "L", false)
		return true
	}

	for _, d := range details {
		if r.ensureSpace(rowHeight) {
			r.tableHeader()
		}
		r.pdf.SetFont("Helvetica", "", 9)
		for _, col := range summaryColumns {
			r.pdf.CellFormat(r.colWidth(col), rowHeight, r.tr(Truncate(col.value(d), col.limit)), "1", 0, "L", false, 0, "")
		}
		r.pdf.Ln(rowHeight)
	}

	r.heading("Isolation Details")
	for _, d := range details {
		r.section(d)
	}
	return false
}

func (r *report) colWidth(col summaryColumn) float64 {
	return col.width * r.width / 170
}

func (r *report) tableHeader() {
	r.ensureSpace(2 * rowHeight)
	r.pdf.SetFont("Helvetica", "B", 9)
	r.pdf.SetFillColor(220, 226, 240)
	for _, col := range summaryColumns {
		r.pdf.CellFormat(r.colWidth(col), rowHeight, col.title, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(rowHeight)
}

func (r *report) section(d IsolationDetail) {
	r.ensureSpace(3 * lineHeight)
	r.pdf.Ln(2)
	r.pdf.SetFont("Helvetica", "B", 11)
	title := d.ID
	if d.Description != "" {
		title += " - " + d.Description
	}
	r.line(title)

	r.pdf.SetFont("Helvetica", "", 10)
	r.field("Planned Start Date", d.PlannedStartDate)
	r.field("Age", d.Age)
	r.field("Risk Level", d.RiskLevel)
	r.field("Isolation Duration", d.IsolationDuration)
	r.field("Business Impact", d.BusinessImpact)
	r.field("MOC Required", d.MOCRequired)
	r.field("MOC Number", d.MOCNumber)
	r.field("Parts Required", d.PartsRequired)
	r.field("Parts Expected Date", d.PartsExpectedDate)
	r.field("Support Required", d.SupportRequired)
	r.field("Comments", d.Comments)
	for _, a := range d.Assessments {
		value := a.Rating
		if a.Comment != "" {
			value = strings.TrimSpace(OrNA(a.Rating) + " - " + a.Comment)
		}
		r.field(a.Label, value)
	}

	if len(d.ActionItems) > 0 {
		r.line("Action Items:")
		n := 0
		for _, item := range d.ActionItems {
			if item.Empty() {
				continue
			}
			n++
			r.line(fmt.Sprintf("  %d. %s (Owner: %s)", n, OrNA(item.Description), OrNA(item.Owner)))
		}
	}
}
