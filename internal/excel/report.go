package excel

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/palinaresort/resort-booking-backend/internal/booking"
)

// DailyReport builds the front desk workbook for one day: a Summary
// sheet with the day's counts, plus a detail sheet for each non-empty
// section (bookings created today, confirmed cabin check-ins over the
// next week, today's confirmed day passes).
func (s *service) DailyReport(ctx context.Context, now time.Time) ([]byte, string, error) {
	all, err := s.bookings.List(ctx, booking.Filter{})
	if err != nil {
		return nil, "", err
	}

	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	weekOut := today.AddDate(0, 0, 7)

	var newToday, checkIns, dayPasses []*booking.Booking
	for _, b := range all {
		if sameDay(b.CreatedAt, now) {
			newToday = append(newToday, b)
		}
		if b.Status == booking.StatusConfirmed && b.Type == booking.TypeCabin &&
			b.CheckInDate != nil && !b.CheckInDate.Before(today) && b.CheckInDate.Before(weekOut) {
			checkIns = append(checkIns, b)
		}
		if b.Status == booking.StatusConfirmed && b.Type == booking.TypeDayPass &&
			b.VisitDate != nil && sameDay(*b.VisitDate, now) {
			dayPasses = append(dayPasses, b)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, "", fmt.Errorf("rename sheet failed: %w", err)
	}

	sections := []reportSection{
		{"New Bookings", newToday},
		{"Upcoming Check-ins", checkIns},
		{"Today's Day Passes", dayPasses},
	}

	if err := writeReportSummary(f, now, sections); err != nil {
		return nil, "", err
	}
	for _, section := range sections {
		if len(section.bookings) == 0 {
			continue
		}
		if _, err := f.NewSheet(section.sheet); err != nil {
			return nil, "", fmt.Errorf("create sheet failed: %w", err)
		}
		if err := writeReportSheet(f, section.sheet, section.bookings); err != nil {
			return nil, "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write report failed: %w", err)
	}
	name := fmt.Sprintf("palina_daily_report_%s.xlsx", now.Format(booking.DateLayout))
	return buf.Bytes(), name, nil
}

type reportSection struct {
	sheet    string
	bookings []*booking.Booking
}

func writeReportSummary(f *excelize.File, now time.Time, sections []reportSection) error {
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("create title style failed: %w", err)
	}

	if err := f.SetCellValue(summarySheet, "A1", "Palina Resort Daily Report"); err != nil {
		return fmt.Errorf("write report title failed: %w", err)
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A1", titleStyle); err != nil {
		return fmt.Errorf("style report title failed: %w", err)
	}
	if err := f.SetCellValue(summarySheet, "A2", "Report Date"); err != nil {
		return fmt.Errorf("write report date label failed: %w", err)
	}
	if err := f.SetCellValue(summarySheet, "B2", now.Format(booking.DateLayout)); err != nil {
		return fmt.Errorf("write report date failed: %w", err)
	}

	for i, section := range sections {
		row := i + 4
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), section.sheet); err != nil {
			return fmt.Errorf("write report count label failed: %w", err)
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), len(section.bookings)); err != nil {
			return fmt.Errorf("write report count failed: %w", err)
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 24); err != nil {
		return fmt.Errorf("set report width failed: %w", err)
	}
	return nil
}

func writeReportSheet(f *excelize.File, sheet string, bookings []*booking.Booking) error {
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style failed: %w", err)
	}

	for i, col := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("resolve column name failed: %w", err)
		}
		if err := f.SetCellValue(sheet, name+"1", col.header); err != nil {
			return fmt.Errorf("write header failed: %w", err)
		}
		if err := f.SetColWidth(sheet, name, name, col.width); err != nil {
			return fmt.Errorf("set column width failed: %w", err)
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(columns))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("style header failed: %w", err)
	}

	for i, b := range bookings {
		row := i + 2
		for j, value := range bookingRow(b) {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return fmt.Errorf("resolve cell failed: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("write report row failed: %w", err)
			}
		}
	}
	return nil
}

func sameDay(t, ref time.Time) bool {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
