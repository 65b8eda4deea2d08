package excel

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/palinaresort/resort-booking-backend/internal/booking"
)

const (
	bookingsSheet = "Bookings"
	summarySheet  = "Summary"
)

// columns is the fixed export layout. Import relies on the same order,
// so the two must not drift apart.
var columns = []struct {
	header string
	width  float64
}{
	{"Booking ID", 12},
	{"Guest Name", 22},
	{"Phone", 18},
	{"Email", 26},
	{"Type", 12},
	{"Check-in Date", 14},
	{"Check-out Date", 14},
	{"Visit Date", 14},
	{"Number of Guests", 16},
	{"Total Price ($)", 14},
	{"Status", 12},
	{"Special Requests", 30},
	{"Admin Notes", 30},
	{"WhatsApp Notified", 16},
	{"Created At", 20},
	{"Updated At", 20},
}

const (
	colStatus     = 10
	colAdminNotes = 12
)

// Export renders the bookings matching the filter into a workbook and
// returns the file bytes along with a timestamped filename suggestion.
// Rows come out in list order, so the output is deterministic.
func (s *service) Export(ctx context.Context, filter booking.Filter) ([]byte, string, error) {
	bookings, err := s.bookings.List(ctx, filter)
	if err != nil {
		return nil, "", err
	}
	stats, err := s.bookings.Stats(ctx)
	if err != nil {
		return nil, "", err
	}

	f, err := buildWorkbook(bookings, stats, s.now())
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write workbook failed: %w", err)
	}
	return buf.Bytes(), exportFilename(s.now()), nil
}

// ExportToStorage writes the workbook into the exports/ area of local
// storage and returns the stored filename.
func (s *service) ExportToStorage(ctx context.Context) (string, error) {
	content, name, err := s.Export(ctx, booking.Filter{})
	if err != nil {
		return "", err
	}
	if err := s.storage.Save(ctx, storedPath(name), bytesReader(content)); err != nil {
		return "", fmt.Errorf("store export failed: %w", err)
	}
	return name, nil
}

func exportFilename(now time.Time) string {
	return fmt.Sprintf("palina_bookings_%s.xlsx", now.Format("2006-01-02_150405"))
}

func buildWorkbook(bookings []*booking.Booking, stats booking.Stats, now time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", bookingsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet failed: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style failed: %w", err)
	}

	for i, col := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("resolve column name failed: %w", err)
		}
		cell := name + "1"
		if err := f.SetCellValue(bookingsSheet, cell, col.header); err != nil {
			return nil, fmt.Errorf("write header failed: %w", err)
		}
		if err := f.SetColWidth(bookingsSheet, name, name, col.width); err != nil {
			return nil, fmt.Errorf("set column width failed: %w", err)
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(columns))
	if err := f.SetCellStyle(bookingsSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header failed: %w", err)
	}

	for i, b := range bookings {
		row := i + 2
		for j, value := range bookingRow(b) {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, fmt.Errorf("resolve cell failed: %w", err)
			}
			if err := f.SetCellValue(bookingsSheet, cell, value); err != nil {
				return nil, fmt.Errorf("write booking row failed: %w", err)
			}
		}
	}

	if err := writeSummary(f, len(bookings), stats, now); err != nil {
		return nil, err
	}
	return f, nil
}

// bookingRow flattens one booking into the column layout. Values match
// what the import side parses back.
func bookingRow(b *booking.Booking) []any {
	return []any{
		b.ID,
		b.GuestName,
		b.GuestPhone,
		b.GuestEmail,
		typeLabel(b.Type),
		dateCell(b.CheckInDate),
		dateCell(b.CheckOutDate),
		dateCell(b.VisitDate),
		b.NumberOfGuests,
		b.TotalPrice,
		statusLabel(b.Status),
		b.SpecialRequests,
		b.AdminNotes,
		yesNo(b.WhatsAppNotified),
		b.CreatedAt.Format("2006-01-02 15:04:05"),
		b.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func writeSummary(f *excelize.File, total int, stats booking.Stats, now time.Time) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create summary sheet failed: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("create title style failed: %w", err)
	}

	lines := []struct {
		label string
		value any
	}{
		{"Total Bookings", total},
		{"Pending", stats.Pending},
		{"Confirmed", stats.Confirmed},
		{"Cabin Bookings", stats.CabinBookings},
		{"Day Pass Bookings", stats.DayPassBookings},
		{"Generated At", now.Format("2006-01-02 15:04:05")},
	}

	if err := f.SetCellValue(summarySheet, "A1", "Palina Resort Booking Summary"); err != nil {
		return fmt.Errorf("write summary title failed: %w", err)
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A1", titleStyle); err != nil {
		return fmt.Errorf("style summary title failed: %w", err)
	}
	for i, line := range lines {
		row := i + 3
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), line.label); err != nil {
			return fmt.Errorf("write summary label failed: %w", err)
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), line.value); err != nil {
			return fmt.Errorf("write summary value failed: %w", err)
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 24); err != nil {
		return fmt.Errorf("set summary width failed: %w", err)
	}
	return nil
}

func typeLabel(t booking.Type) string {
	if t == booking.TypeCabin {
		return "Cabin Stay"
	}
	return "Day Pass"
}

func statusLabel(s booking.Status) string {
	str := string(s)
	if str == "" {
		return ""
	}
	return strings.ToUpper(str[:1]) + str[1:]
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func dateCell(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(booking.DateLayout)
}
