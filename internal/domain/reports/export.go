package reports

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var directoryHeader = []string{
	"Employee ID", "Name", "Email", "Position", "Department",
	"Employment Type", "Start Date", "Gender", "Salary",
}

// DirectoryXLSX renders the company's employee directory as a spreadsheet.
// The buffer and a suggested file name are returned; the transport layer
// sets the response headers.
func (s *Service) DirectoryXLSX(ctx context.Context, companyID string) (*bytes.Buffer, string, error) {
	employees, err := s.employees.ListEmployees(ctx, companyID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Directory"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, "", err
	}

	for i, title := range directoryHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, "", err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, "", err
		}
	}
	_ = f.SetColWidth(sheet, "A", "B", 16)
	_ = f.SetColWidth(sheet, "C", "C", 28)

	for row, emp := range employees {
		values := []any{
			emp.EmployeeID, emp.Name, emp.Email, emp.Position, emp.Department,
			emp.EmploymentType, emp.StartDate, emp.Gender, emp.Salary,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, "", err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	fileName := fmt.Sprintf("directory-%s.xlsx", s.now().Format("2006-01-02"))
	return buf, fileName, nil
}
