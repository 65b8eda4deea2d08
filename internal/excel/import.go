package excel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/palinaresort/resort-booking-backend/internal/booking"
)

var ErrNoSheets = errors.New("workbook has no sheets")

// ImportResult summarizes one import run. Skipped counts rows whose
// status cell held an unrecognized value; Errors collects per-row
// failures without aborting the rest of the file.
type ImportResult struct {
	Imported int      `json:"imported"`
	Updated  int      `json:"updated"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

func (s *service) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook failed: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows failed: %w", err)
	}

	result := &ImportResult{Errors: []string{}}
	for i, row := range rows {
		if i == 0 {
			// Header row.
			continue
		}
		if emptyRow(row) {
			continue
		}
		s.importRow(ctx, i+1, row, result)
	}
	return result, nil
}

// importRow handles a single data row. Rows carrying a booking id are
// status updates; the rest become new bookings.
func (s *service) importRow(ctx context.Context, rowNum int, row []string, result *ImportResult) {
	idCell := strings.TrimSpace(cell(row, 0))
	if idCell != "" {
		id, err := strconv.ParseInt(idCell, 10, 64)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid booking id %q", rowNum, idCell))
			return
		}
		s.updateRow(ctx, rowNum, id, row, result)
		return
	}
	s.createRow(ctx, rowNum, row, result)
}

func (s *service) updateRow(ctx context.Context, rowNum int, id int64, row []string, result *ImportResult) {
	status := booking.Status(strings.ToLower(strings.TrimSpace(cell(row, colStatus))))
	if !status.Valid() {
		result.Skipped++
		return
	}

	var notes *string
	if n := strings.TrimSpace(cell(row, colAdminNotes)); n != "" {
		notes = &n
	}

	if err := s.bookings.UpdateStatus(ctx, id, status, notes); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("row %d: update booking %d: %v", rowNum, id, err))
		return
	}
	result.Updated++
}

func (s *service) createRow(ctx context.Context, rowNum int, row []string, result *ImportResult) {
	name := strings.TrimSpace(cell(row, 1))
	phone := strings.TrimSpace(cell(row, 2))
	if name == "" || phone == "" {
		result.Errors = append(result.Errors, fmt.Sprintf("row %d: guest name and phone are required", rowNum))
		return
	}

	b := &booking.Booking{
		GuestName:       name,
		GuestPhone:      phone,
		GuestEmail:      strings.TrimSpace(cell(row, 3)),
		Type:            parseType(cell(row, 4)),
		NumberOfGuests:  parseGuests(cell(row, 8)),
		TotalPrice:      parsePrice(cell(row, 9)),
		SpecialRequests: strings.TrimSpace(cell(row, 11)),
	}
	switch b.Type {
	case booking.TypeCabin:
		b.CheckInDate = parseDate(cell(row, 5))
		b.CheckOutDate = parseDate(cell(row, 6))
	case booking.TypeDayPass:
		b.VisitDate = parseDate(cell(row, 7))
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("row %d: create booking: %v", rowNum, err))
		return
	}
	result.Imported++
}

// cell reads a column by index; GetRows drops trailing empty cells.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseType(v string) booking.Type {
	if strings.Contains(strings.ToLower(v), "cabin") {
		return booking.TypeCabin
	}
	return booking.TypeDayPass
}

func parseGuests(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func parsePrice(v string) float64 {
	p, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || p < 0 {
		return 0
	}
	return p
}

func parseDate(v string) *time.Time {
	t, err := time.Parse(booking.DateLayout, strings.TrimSpace(v))
	if err != nil {
		return nil
	}
	return &t
}
