package leave

import (
	"context"
	"encoding/csv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

type StoreAPI interface {
	CreateType(ctx context.Context, companyID string, input TypeInput) (string, error)
	UpdateType(ctx context.Context, companyID, id string, input TypeInput) error
	DeleteType(ctx context.Context, companyID, id string) error
	ListTypes(ctx context.Context, companyID string) ([]LeaveType, error)
	TypeExists(ctx context.Context, companyID, typeID string) (bool, error)

	CreateRecord(ctx context.Context, companyID string, input RecordInput) (string, error)
	DeleteRecord(ctx context.Context, companyID, id string) error
	GetRecord(ctx context.Context, companyID, id string) (LeaveRecord, error)
	ListRecords(ctx context.Context, companyID, employeeID string) ([]LeaveRecord, error)

	AddRecordDocument(ctx context.Context, companyID, recordID, fileName, contentType string, data []byte) (string, error)
	ListRecordDocuments(ctx context.Context, companyID, recordID string) ([]RecordDocument, error)
	RecordDocumentData(ctx context.Context, companyID, documentID string) (RecordDocument, []byte, error)

	CreateHoliday(ctx context.Context, companyID string, input HolidayInput) (string, error)
	DeleteHoliday(ctx context.Context, companyID, id string) error
	ListHolidays(ctx context.Context, companyID string) ([]Holiday, error)
}

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) CreateType(ctx context.Context, companyID string, input TypeInput) (string, error) {
	return s.store.CreateType(ctx, companyID, input)
}

func (s *Service) UpdateType(ctx context.Context, companyID, id string, input TypeInput) error {
	return s.store.UpdateType(ctx, companyID, id, input)
}

func (s *Service) DeleteType(ctx context.Context, companyID, id string) error {
	return s.store.DeleteType(ctx, companyID, id)
}

func (s *Service) ListTypes(ctx context.Context, companyID string) ([]LeaveType, error) {
	return s.store.ListTypes(ctx, companyID)
}

// CreateRecord stores a validated leave record. A leaveTypeId is a soft
// reference; when present it must resolve, otherwise the free-text type
// stands on its own.
func (s *Service) CreateRecord(ctx context.Context, companyID string, input RecordInput) (LeaveRecord, error) {
	if input.LeaveTypeID != "" {
		ok, err := s.store.TypeExists(ctx, companyID, input.LeaveTypeID)
		if err != nil {
			return LeaveRecord{}, err
		}
		if !ok {
			return LeaveRecord{}, ErrUnknownType
		}
	}

	id, err := s.store.CreateRecord(ctx, companyID, input)
	if err != nil {
		return LeaveRecord{}, err
	}
	return s.store.GetRecord(ctx, companyID, id)
}

func (s *Service) DeleteRecord(ctx context.Context, companyID, id string) error {
	return s.store.DeleteRecord(ctx, companyID, id)
}

func (s *Service) ListRecords(ctx context.Context, companyID, employeeID string) ([]LeaveRecord, error) {
	return s.store.ListRecords(ctx, companyID, employeeID)
}

func (s *Service) AttachRecordDocument(ctx context.Context, companyID, recordID, fileName, contentType string, data []byte) (string, error) {
	return s.store.AddRecordDocument(ctx, companyID, recordID, fileName, contentType, data)
}

func (s *Service) RecordDocuments(ctx context.Context, companyID, recordID string) ([]RecordDocument, error) {
	return s.store.ListRecordDocuments(ctx, companyID, recordID)
}

func (s *Service) RecordDocumentData(ctx context.Context, companyID, documentID string) (RecordDocument, []byte, error) {
	return s.store.RecordDocumentData(ctx, companyID, documentID)
}

func (s *Service) Usage(ctx context.Context, companyID, employeeID string, year int) (UsageSummary, error) {
	records, err := s.store.ListRecords(ctx, companyID, employeeID)
	if err != nil {
		return UsageSummary{}, err
	}
	return SummarizeUsage(records, employeeID, year), nil
}

func (s *Service) CreateHoliday(ctx context.Context, companyID string, input HolidayInput) (string, error) {
	return s.store.CreateHoliday(ctx, companyID, input)
}

func (s *Service) DeleteHoliday(ctx context.Context, companyID, id string) error {
	return s.store.DeleteHoliday(ctx, companyID, id)
}

func (s *Service) ListHolidays(ctx context.Context, companyID string) ([]Holiday, error) {
	return s.store.ListHolidays(ctx, companyID)
}

// CalendarICS renders company holidays and leave records as an iCalendar
// feed of all-day events.
func (s *Service) CalendarICS(ctx context.Context, companyID string) (string, error) {
	holidays, err := s.store.ListHolidays(ctx, companyID)
	if err != nil {
		return "", err
	}
	records, err := s.store.ListRecords(ctx, companyID, "")
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//hummane//leave-calendar//EN")

	for _, holiday := range holidays {
		date, err := time.Parse("2006-01-02", holiday.Date)
		if err != nil {
			continue
		}
		event := cal.AddEvent("holiday-" + holiday.ID + "@hummane")
		event.SetSummary("Holiday: " + holiday.Name)
		event.SetAllDayStartAt(date)
		event.SetAllDayEndAt(date.AddDate(0, 0, 1))
	}

	for _, rec := range records {
		date, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			continue
		}
		label := rec.Type
		if label == "" {
			label = "Leave"
		}
		event := cal.AddEvent("leave-" + rec.ID + "@hummane")
		event.SetSummary(label)
		event.SetAllDayStartAt(date)
		event.SetAllDayEndAt(date.AddDate(0, 0, 1))
	}

	return cal.Serialize(), nil
}

// CalendarCSV renders the same feed as CSV rows of (date, kind, label).
func (s *Service) CalendarCSV(ctx context.Context, companyID string) (string, error) {
	holidays, err := s.store.ListHolidays(ctx, companyID)
	if err != nil {
		return "", err
	}
	records, err := s.store.ListRecords(ctx, companyID, "")
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	writer := csv.NewWriter(&buf)
	_ = writer.Write([]string{"date", "kind", "label"})
	for _, holiday := range holidays {
		_ = writer.Write([]string{holiday.Date, "holiday", holiday.Name})
	}
	for _, rec := range records {
		label := rec.Type
		if label == "" {
			label = "Leave"
		}
		_ = writer.Write([]string{rec.Date, "leave", label})
	}
	writer.Flush()
	return buf.String(), writer.Error()
}
