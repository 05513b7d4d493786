package analytics

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"reinsure/internal/domain"
	"reinsure/internal/domain/lead"
)

const (
	exportTimeLayout = "2006-01-02T15:04:05.000Z"
	exportSheet      = "Leads"
)

var exportHeader = []string{
	"Name",
	"Email",
	"Phone",
	"Service",
	"UTM Source",
	"UTM Medium",
	"UTM Campaign",
	"UTM Term",
	"UTM Content",
	"Referrer",
	"IP",
	"Status",
	"Created At",
}

func exportRow(l *lead.Lead) []string {
	return []string{
		l.Name,
		l.Email,
		l.Phone,
		domain.Value(l.Service),
		l.UTMSource,
		domain.Value(l.UTMMedium),
		domain.Value(l.UTMCampaign),
		domain.Value(l.UTMTerm),
		domain.Value(l.UTMContent),
		domain.Value(l.Referrer),
		domain.Value(l.IP),
		string(l.Status),
		l.CreatedAt.UTC().Format(exportTimeLayout),
	}
}

// WriteCSV writes leads as CSV: a bare header line, then one line per lead
// with every cell quoted and embedded quotes doubled. Lines are separated
// by "\n" with no trailing newline.
func WriteCSV(w io.Writer, leads []lead.Lead) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Join(exportHeader, ","))

	for i := range leads {
		bw.WriteByte('\n')
		for j, cell := range exportRow(&leads[i]) {
			if j > 0 {
				bw.WriteByte(',')
			}
			bw.WriteByte('"')
			bw.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			bw.WriteByte('"')
		}
	}
	return bw.Flush()
}

// WriteXLSX writes the same rows as WriteCSV to a single-sheet workbook.
func WriteXLSX(w io.Writer, leads []lead.Lead) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", toCells(exportHeader)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(exportHeader), 1)
	if err := f.SetCellStyle(exportSheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i := range leads {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, toCells(exportRow(&leads[i]))); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(exportHeader))
	if err := f.SetColWidth(exportSheet, "A", lastCol, 20); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	return f.Write(w)
}

func toCells(values []string) *[]any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return &cells
}

// exportFilename names a download made at now.
func exportFilename(now time.Time, ext string) string {
	return "leads-export-" + now.UTC().Format(time.DateOnly) + "." + ext
}
