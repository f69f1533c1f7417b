package export_bookings

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/booking-calendar/internal/domain"
)

const (
	sheetName  = "Bookings"
	dateLayout = "2006-01-02 15:04"
)

var header = []string{"ID", "User", "Title", "Start", "End", "Status", "Notes", "Calendar event", "Created"}

// UseCase выгрузка бронирований в .xlsx для администратора
type UseCase struct {
	bookingRepo  BookingRepository
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. Время в файле выводится в зоне loc.
func NewUseCase(bookingRepo BookingRepository, loc *time.Location, logger Logger) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		loc:          loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute формирует файл
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExportBookings: requested by user=%d", req.Actor.UserID)

	if !req.Actor.IsAdmin() {
		uc.logger.Warn("ExportBookings: user=%d is not an admin", req.Actor.UserID)
		return nil, ErrAccessDenied
	}

	bookings, err := uc.bookingRepo.List(ctx, req.Filter)
	if err != nil {
		uc.logger.Error("ExportBookings: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	buf, err := uc.render(bookings)
	if err != nil {
		uc.logger.Error("ExportBookings: failed to render spreadsheet: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrGenerate, err)
	}

	filename := fmt.Sprintf("bookings_%s.xlsx", uc.timeProvider.Now().In(uc.loc).Format("20060102_1504"))
	uc.logger.Info("ExportBookings: %d bookings exported to %s", len(bookings), filename)

	return &Response{Content: buf, Filename: filename, Rows: len(bookings)}, nil
}

func (uc *UseCase) render(bookings []*domain.Booking) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	for i, title := range header {
		if err := f.SetCellValue(sheetName, cell(i, 1), title); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheetName, cell(0, 1), cell(len(header)-1, 1), headerStyle); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(sheetName, "C", "C", 32)
	_ = f.SetColWidth(sheetName, "D", "E", 18)
	_ = f.SetColWidth(sheetName, "G", "G", 40)

	for i, b := range bookings {
		row := i + 2
		values := []interface{}{
			b.ID,
			b.UserID,
			b.Title,
			b.Start.In(uc.loc).Format(dateLayout),
			b.End.In(uc.loc).Format(dateLayout),
			string(b.Status),
			deref(b.Notes),
			deref(b.ExternalEventRef),
			b.CreatedAt.In(uc.loc).Format(dateLayout),
		}
		for col, v := range values {
			if err := f.SetCellValue(sheetName, cell(col, row), v); err != nil {
				return nil, err
			}
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// cell имя ячейки по номеру колонки (с нуля) и строки (с единицы)
func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
