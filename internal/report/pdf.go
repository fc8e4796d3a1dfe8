package report

import (
	"fmt"

	"attendance.service/internal/core"
	"attendance.service/internal/core/model"
	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	mcore "github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

// BuildPDF renders the report as a printable A4 document: title, summary
// figures, and a table of approved records.
func BuildPDF(rep *core.ReimbursementReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reimbursement Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rep.Records) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(rep))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(rep *core.ReimbursementReport) mcore.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reimbursement Report", props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 1,
			}),
			text.New("Approved attendance records only", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generated "+rep.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Top: 1, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() mcore.Row {
	return row.New(7).Add(
		headerCol(2, "Date"),
		headerCol(4, "Worker"),
		headerCol(2, "In"),
		headerCol(2, "Out"),
		headerCol(2, "Wage"),
	)
}

func headerCol(size int, label string) mcore.Col {
	return col.New(size).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 8}),
	)
}

func tableRows(records []model.AttendanceRecord) []mcore.Row {
	rows := make([]mcore.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(r.Date, props.Text{Size: 8})),
			col.New(4).Add(text.New(r.UserName, props.Text{Size: 8})),
			col.New(2).Add(text.New(formatClock(&r.ClockInTime), props.Text{Size: 8})),
			col.New(2).Add(text.New(formatClock(r.ClockOutTime), props.Text{Size: 8})),
			col.New(2).Add(text.New(r.DailyWage.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}

func totalsRow(rep *core.ReimbursementReport) mcore.Row {
	return row.New(8).Add(
		col.New(10).Add(
			text.New(fmt.Sprintf("Total (%d records)", rep.Count), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
			}),
		),
		col.New(2).Add(
			text.New(rep.TotalWage.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
			}),
		),
	)
}
