package export

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	"github.com/johnquangdev/lti-omt/internal/usecase/shape"
	"github.com/johnquangdev/lti-omt/pkg/config"
)

// SheetName is the single worksheet of an exported meeting
const SheetName = "LTI Meeting"

// IsolationColumns is the header of sheets built from an isolations array
var IsolationColumns = []string{
	"Isolation ID", "Description", "Planned Start Date", "Age", "Risk Level",
	"Isolation Duration", "Business Impact", "MOC Required", "MOC Number",
	"Parts Required", "Parts Expected Date", "Support Required", "Comments", "Action Items",
}

// ResponseColumns is the header of sheets built from responses alone; such records
// carry no isolation description or start date.
var ResponseColumns = []string{
	"Isolation ID", "Risk Level", "Isolation Duration", "Business Impact",
	"MOC Required", "MOC Number", "Parts Required", "Support Required", "Comments", "Action Items",
}

// Table is the tabular form of a meeting
type Table struct {
	Columns []string
	Rows    [][]string
}

// BuildRows lays a meeting out as rows. Map-only records use the shorter
// response-only column set; a record with nothing to list is ErrNoExportData.
func BuildRows(m *entities.Meeting, now time.Time) (*Table, error) {
	switch m.Shape {
	case entities.ShapeEnhanced, entities.ShapeNested, entities.ShapeDeep:
		table := &Table{Columns: IsolationColumns}
		for _, iso := range m.Isolations {
			if iso.Orphan {
				continue
			}
			resp, ok := m.ResponseFor(iso.ID)
			d := merge(iso, resp, ok, now)
			table.Rows = append(table.Rows, []string{
				d.ID, d.Description, d.PlannedStartDate, d.Age, d.RiskLevel,
				d.IsolationDuration, d.BusinessImpact, d.MOCRequired, d.MOCNumber,
				d.PartsRequired, d.PartsExpectedDate, d.SupportRequired, d.Comments,
				FormatActionItems(d.ActionItems),
			})
		}
		if len(table.Rows) > 0 {
			return table, nil
		}

	case entities.ShapeLegacy:
		table := &Table{Columns: ResponseColumns}
		for _, id := range m.ResponseOrder {
			resp := m.Responses[id]
			table.Rows = append(table.Rows, []string{
				id, string(resp.RiskLevel), resp.IsolationDuration, resp.BusinessImpact,
				resp.MOCRequired, resp.MOCNumber, resp.PartsRequired, resp.SupportRequired,
				resp.Comments, FormatActionItems(resp.ActionItems),
			})
		}
		return table, nil
	}
	return nil, entities.ErrNoExportData
}

// SpreadsheetExporter writes meetings as single-sheet xlsx workbooks
type SpreadsheetExporter struct {
	cfg    config.ExportConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewSpreadsheetExporter creates a new spreadsheet exporter
func NewSpreadsheetExporter(cfg config.ExportConfig, logger *zap.Logger) *SpreadsheetExporter {
	return &SpreadsheetExporter{cfg: cfg, logger: logger, now: time.Now}
}

// Export normalizes a raw meeting record and writes it as a workbook
func (e *SpreadsheetExporter) Export(ctx context.Context, raw []byte) (*Artifact, error) {
	m, err := shape.Normalize(raw)
	if err != nil {
		return nil, err
	}
	return e.ExportMeeting(ctx, m)
}

// ExportMeeting writes a normalized meeting as a workbook
func (e *SpreadsheetExporter) ExportMeeting(ctx context.Context, m *entities.Meeting) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := e.now()
	table, err := BuildRows(m, now)
	if err != nil {
		return nil, err
	}

	content, err := e.write(table)
	if err != nil {
		e.logger.Error("Spreadsheet export failed", zap.Error(err), zap.String("date", m.Date))
		return nil, err
	}

	artifact := &Artifact{
		Filename:    Filename(m.Date, "xlsx", now),
		ContentType: ContentTypeXLSX,
		Content:     content,
		MeetingDate: m.Date,
	}
	e.logger.Info("Spreadsheet exported",
		zap.String("filename", artifact.Filename),
		zap.Int("rows", len(table.Rows)),
		zap.String("shape", string(m.Shape)),
	)
	return artifact, nil
}

func (e *SpreadsheetExporter) write(table *Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Creator: e.cfg.Author,
		Title:   ReportTitle,
	}); err != nil {
		return nil, fmt.Errorf("failed to set document properties: %w", err)
	}

	header := make([]interface{}, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range table.Rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(table.Columns))
	if err != nil {
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DCE2F0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", style); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", lastCol, 20); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
