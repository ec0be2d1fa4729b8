package analyticshandler

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"empdir/internal/domain/directory"
	"empdir/internal/platform/format"
)

type reportData struct {
	Summary   directory.Summary
	Positions []directory.PositionAggregate
	Locations []directory.LocationAggregate
}

func reportPDF(report reportData, printer *format.Printer) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Employee directory report", true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Employee directory report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employees: %s", printer.Count(report.Summary.Count)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Average salary: %s", printer.Amount(report.Summary.AverageSalary)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Highest salary: %s", printer.Amount(report.Summary.MaxSalary)))
	pdf.Ln(7)
	if report.Summary.UnknownSalaries > 0 {
		pdf.Cell(0, 8, fmt.Sprintf("Records with unreadable salary: %s", printer.Count(report.Summary.UnknownSalaries)))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	header(pdf, []string{"Location", "Employees", "Total salary", "Average salary"}, []float64{60, 30, 45, 45})
	for _, loc := range report.Locations {
		row(pdf, []string{
			loc.Location,
			printer.Count(loc.Count),
			printer.Amount(loc.TotalSalary),
			printer.Amount(loc.AverageSalary),
		}, []float64{60, 30, 45, 45})
	}
	pdf.Ln(8)

	header(pdf, []string{"Position", "Employees"}, []float64{120, 30})
	for _, pos := range report.Positions {
		row(pdf, []string{pos.Position, printer.Count(pos.Count)}, []float64{120, 30})
	}
	return pdf
}

func header(pdf *gofpdf.Fpdf, cols []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 11)
	for i, col := range cols {
		pdf.CellFormat(widths[i], 8, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func row(pdf *gofpdf.Fpdf, cells []string, widths []float64) {
	pdf.SetFont("Helvetica", "", 10)
	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, cell, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}
