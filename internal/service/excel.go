package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

type AttendanceRow struct {
	AttendanceID int
	EmployeeID   string
	StationID    string
	Address      string
	PunchinTime  *time.Time
	PunchoutTime *time.Time
}

// AttendanceExcel builds an .xlsx workbook of attendance history rows.
func AttendanceExcel(rows []AttendanceRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"

	headers := []string{"Attendance ID", "Employee ID", "Station ID", "Address", "Punch In", "Punch Out"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, entry := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.AttendanceID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), entry.EmployeeID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), entry.StationID)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), entry.Address)
		if entry.PunchinTime != nil {
			f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), entry.PunchinTime.Format("2006-01-02 15:04:05"))
		}
		if entry.PunchoutTime != nil {
			f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), entry.PunchoutTime.Format("2006-01-02 15:04:05"))
		}
		rowNum++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}

	return buf.Bytes(), nil
}
