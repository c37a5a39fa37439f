package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deskhub/booking-api/internal/core"
	"github.com/deskhub/booking-api/internal/data"
	domainauth "github.com/deskhub/booking-api/internal/domain/auth"
	"github.com/deskhub/booking-api/internal/domain/model"
	apperrors "github.com/deskhub/booking-api/internal/errors"
)

// BreakageServiceOptions groups dependencies for BreakageService.
type BreakageServiceOptions struct {
	Breakages  core.BreakageRepository
	Workplaces core.WorkplaceRepository
	Logger     DebugLogger // optional
}

// BreakageService manages equipment breakage reports. Any authenticated
// user may file a report; status transitions are admin work.
type BreakageService struct {
	breakages  core.BreakageRepository
	workplaces core.WorkplaceRepository
	log        DebugLogger
}

// NewBreakageService constructs a new BreakageService.
func NewBreakageService(opts BreakageServiceOptions) *BreakageService {
	return &BreakageService{
		breakages:  opts.Breakages,
		workplaces: opts.Workplaces,
		log:        opts.Logger,
	}
}

// BreakageListResult is a page of breakage reports plus the unpaged total.
type BreakageListResult struct {
	Items []*model.BreakageReport `json:"items"`
	Total int64                   `json:"total"`
}

// Create files a breakage report for an existing workplace on behalf of
// the principal.
func (s *BreakageService) Create(ctx context.Context, principal *domainauth.Principal, req *model.CreateBreakageRequest) (*model.BreakageReport, error) {
	if principal == nil {
		return nil, apperrors.Unauthorized("authentication required")
	}
	if req == nil {
		return nil, apperrors.Validation("create breakage request is required")
	}
	req.UserID = principal.Subject
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if s.workplaces != nil {
		if _, err := s.workplaces.GetByID(ctx, req.WorkplaceID); err != nil {
			if errors.Is(err, data.ErrWorkplaceNotFound) {
				return nil, apperrors.ValidationField("workplace_id", "workplace does not exist")
			}
			return nil, fmt.Errorf("check workplace: %w", err)
		}
	}

	report, err := s.breakages.Create(ctx, req)
	if err != nil {
		return nil, mapBreakageWriteErr(err)
	}
	if s.log != nil {
		s.log.Debug("breakage reported",
			"report_id", report.ID,
			"workplace_id", report.WorkplaceID,
			"user_id", report.UserID)
	}
	return report, nil
}

// GetByID returns a breakage report by ID.
func (s *BreakageService) GetByID(ctx context.Context, id string) (*model.BreakageReport, error) {
	report, err := s.breakages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrBreakageNotFound) {
			return nil, apperrors.NotFound("breakage report not found")
		}
		return nil, fmt.Errorf("get breakage report: %w", err)
	}
	return report, nil
}

// List returns a page of breakage reports with the total matching count.
func (s *BreakageService) List(ctx context.Context, opts model.BreakageListOptions) (*BreakageListResult, error) {
	reports, err := s.breakages.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list breakage reports: %w", err)
	}
	total, err := s.breakages.Count(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("count breakage reports: %w", err)
	}
	return &BreakageListResult{Items: reports, Total: total}, nil
}

// Update changes the description or moves the report through its
// status lifecycle.
func (s *BreakageService) Update(ctx context.Context, id string, req model.UpdateBreakageRequest) (*model.BreakageReport, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	report, err := s.breakages.Update(ctx, id, req)
	if err != nil {
		return nil, mapBreakageWriteErr(err)
	}
	return report, nil
}

// Delete removes a breakage report.
func (s *BreakageService) Delete(ctx context.Context, id string) error {
	ok, err := s.breakages.Delete(ctx, id)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	if !ok {
		return apperrors.NotFound("breakage report not found")
	}
	return nil
}

func mapBreakageWriteErr(err error) error {
	switch {
	case errors.Is(err, data.ErrBreakageNotFound):
		return apperrors.NotFound("breakage report not found")
	case errors.Is(err, data.ErrWorkplaceNotFound):
		return apperrors.ValidationField("workplace_id", "workplace does not exist")
	default:
		return apperrors.MapDBError(err)
	}
}
