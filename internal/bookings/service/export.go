package service

import (
	"context"
	"fmt"

	apperrors "carhire/pkg/errors"
	"carhire/pkg/model"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Bookings"

var exportHeaders = []any{
	"ID", "Car", "Car ID", "Start Date", "End Date",
	"First Name", "Last Name", "Email", "Phone", "Address",
	"Insurance", "Delivery", "Total Price", "Status", "Notes", "Created At",
}

// Export renders every booking, newest first, as an .xlsx workbook.
func (s *bookingService) Export(ctx context.Context) ([]byte, error) {
	bookings, err := s.repo.FindAllForExport(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to load bookings for export", "error", err)
		return nil, apperrors.Internal("Failed to export bookings", err)
	}

	data, err := buildWorkbook(bookings)
	if err != nil {
		s.cfg.Log.Error("Failed to build bookings workbook", "count", len(bookings), "error", err)
		return nil, apperrors.Internal("Failed to export bookings", err)
	}

	s.cfg.Log.Info("Bookings exported successfully", "count", len(bookings))
	return data, nil
}

func buildWorkbook(bookings []*model.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, b := range bookings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			b.ID, b.CarName, b.CarID, b.StartDate, b.EndDate,
			b.FirstName, b.LastName, b.Email, b.Phone, b.Address,
			yesNo(b.IncludeInsurance), yesNo(b.IncludeDelivery), b.TotalPrice, b.Status, b.Notes,
			b.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
