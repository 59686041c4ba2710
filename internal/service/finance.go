package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/target/finance-web/internal/adapters/financeapi"
	"github.com/target/finance-web/internal/domain/finance"
	"github.com/target/finance-web/internal/ports"
	"golang.org/x/sync/errgroup"
)

// FinanceServiceOptions groups dependencies for FinanceService.
type FinanceServiceOptions struct {
	API ports.FinanceAPI
}

// FinanceService decodes backend responses into the values the views render.
type FinanceService struct {
	api ports.FinanceAPI
}

// NewFinanceService constructs a new FinanceService.
func NewFinanceService(opts FinanceServiceOptions) *FinanceService {
	return &FinanceService{api: opts.API}
}

// Dashboard is everything the home view shows.
type Dashboard struct {
	Records    []finance.Record
	Statistics finance.Statistics
}

// Dashboard loads records and statistics concurrently. The first failure cancels the other call.
func (s *FinanceService) Dashboard(ctx context.Context) (*Dashboard, error) {
	var (
		records []finance.Record
		stats   *finance.Statistics
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.Records(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.Statistics(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Dashboard{Records: records, Statistics: *stats}, nil
}

// Records lists every record.
func (s *FinanceService) Records(ctx context.Context) ([]finance.Record, error) {
	resp, err := s.api.GetAllRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	var records []finance.Record
	if err := financeapi.DecodeJSON(resp, &records); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// Record fetches one record.
func (s *FinanceService) Record(ctx context.Context, id string) (finance.Record, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("record ID is required")
	}

	resp, err := s.api.GetRecord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", id, err)
	}

	var record finance.Record
	if err := financeapi.DecodeJSON(resp, &record); err != nil {
		return nil, fmt.Errorf("get record %s: %w", id, err)
	}
	return record, nil
}

// Statistics fetches the server-computed totals.
func (s *FinanceService) Statistics(ctx context.Context) (*finance.Statistics, error) {
	resp, err := s.api.GetStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("get statistics: %w", err)
	}

	var stats finance.Statistics
	if err := financeapi.DecodeJSON(resp, &stats); err != nil {
		return nil, fmt.Errorf("get statistics: %w", err)
	}
	return &stats, nil
}

// CreateRecord stores a new record.
func (s *FinanceService) CreateRecord(ctx context.Context, record finance.Record) error {
	resp, err := s.api.CreateRecord(ctx, record)
	if err != nil {
		return fmt.Errorf("create record: %w", err)
	}
	return financeapi.DiscardBody(resp)
}

// UpdateRecord replaces the record with the given ID.
func (s *FinanceService) UpdateRecord(ctx context.Context, id string, record finance.Record) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("record ID is required")
	}

	resp, err := s.api.UpdateRecord(ctx, id, record)
	if err != nil {
		return fmt.Errorf("update record %s: %w", id, err)
	}
	return financeapi.DiscardBody(resp)
}

// DeleteRecord removes the record with the given ID.
func (s *FinanceService) DeleteRecord(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("record ID is required")
	}

	resp, err := s.api.DeleteRecord(ctx, id)
	if err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	return financeapi.DiscardBody(resp)
}

// ClearAll removes every record.
func (s *FinanceService) ClearAll(ctx context.Context) error {
	resp, err := s.api.ClearAllData(ctx)
	if err != nil {
		return fmt.Errorf("clear data: %w", err)
	}
	return financeapi.DiscardBody(resp)
}
