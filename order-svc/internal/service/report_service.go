package service

import (
	"context"
	"time"

	"foodie-hub/order-svc/internal/domain"
)

const (
	reportDateLayout    = "2006-01-02"
	defaultPopularLimit = 10
	maxPopularLimit     = 100
)

// ReportService answers reporting queries straight from the store on every call.
type ReportService struct {
	repo      ReportRepository
	customers CustomerRepository
}

func NewReportService(repo ReportRepository, customers CustomerRepository) *ReportService {
	return &ReportService{repo: repo, customers: customers}
}

func (s *ReportService) PopularMenuItems(ctx context.Context, limit int) ([]domain.PopularItem, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}
	if limit > maxPopularLimit {
		limit = maxPopularLimit
	}
	return s.repo.PopularMenuItems(ctx, limit)
}

// SalesReport aggregates revenue per menu item. Both bounds are optional
// YYYY-MM-DD dates; the end date is inclusive.
func (s *ReportService) SalesReport(ctx context.Context, startDate, endDate string) (*domain.SalesReport, error) {
	from, err := parseReportDate(startDate, "start_date")
	if err != nil {
		return nil, err
	}
	to, err := parseReportDate(endDate, "end_date")
	if err != nil {
		return nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, domain.InvalidInput("end_date must not be before start_date")
	}
	if to != nil {
		endOfDay := to.Add(24*time.Hour - time.Nanosecond)
		to = &endOfDay
	}

	rows, err := s.repo.SalesReport(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.SalesRow{}
	}

	report := &domain.SalesReport{StartDate: "All time", EndDate: "All time", Rows: rows}
	if startDate != "" {
		report.StartDate = startDate
	}
	if endDate != "" {
		report.EndDate = endDate
	}
	return report, nil
}

func (s *ReportService) CustomerOrderHistory(ctx context.Context, customerID int) (*domain.Customer, []domain.OrderHistoryRow, error) {
	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}
	history, err := s.repo.CustomerOrderHistory(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}
	return customer, history, nil
}

func parseReportDate(value, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(reportDateLayout, value)
	if err != nil {
		return nil, domain.InvalidInput(field + " must use the YYYY-MM-DD format")
	}
	return &parsed, nil
}
