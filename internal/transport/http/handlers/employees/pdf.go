package employeeshandler

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"empdir/internal/domain/directory"
	"empdir/internal/platform/format"
)

func profilePDF(profile directory.Profile, printer *format.Printer) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Employee profile: "+profile.FullName, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, profile.FullName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, profile.Position)
	pdf.Ln(12)

	rows := [][2]string{
		{"Employee ID", profile.EmployeeID},
		{"Department", profile.Department},
		{"Location", profile.Location},
		{"Joined", profile.JoinDate},
		{"Salary", printer.Amount(profile.Salary)},
		{"Email", profile.Email},
		{"Phone", profile.Phone},
		{"Manager", profile.Manager},
		{"Status", profile.Status},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(40, 8, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Salary as published: %s", profile.SalaryDisplay))
	return pdf
}

// fileSafe keeps ASCII letters, digits and dashes for a download filename.
func fileSafe(value, fallback string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return -1
	}, value)
	if cleaned == "" {
		return fallback
	}
	return cleaned
}
