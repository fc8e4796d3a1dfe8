// Package report renders the auditor's reimbursement report for download,
// as a spreadsheet or as a printable PDF.
package report

import (
	"fmt"
	"time"

	"attendance.service/internal/core"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Reimbursement"

// BuildXLSX renders the report as an XLSX workbook: a header row, one row
// per approved record, and a totals row.
func BuildXLSX(rep *core.ReimbursementReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{"Date", "Worker", "Worker ID", "Clock In", "Clock Out", "Daily Wage"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, r := range rep.Records {
		values := []interface{}{
			r.Date,
			r.UserName,
			r.UserID,
			formatClock(&r.ClockInTime),
			formatClock(r.ClockOutTime),
			r.DailyWage.InexactFloat64(),
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	totalLabel, err := excelize.CoordinatesToCellName(5, row)
	if err != nil {
		return nil, err
	}
	totalCell, err := excelize.CoordinatesToCellName(6, row)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheetName, totalLabel, fmt.Sprintf("Total (%d records)", rep.Count)); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheetName, totalCell, rep.TotalWage.InexactFloat64()); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatClock(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("15:04")
}
