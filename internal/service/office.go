package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/deskhub/booking-api/internal/core"
	"github.com/deskhub/booking-api/internal/data"
	"github.com/deskhub/booking-api/internal/domain/model"
	apperrors "github.com/deskhub/booking-api/internal/errors"
)

const (
	officeCacheTTL       = 5 * time.Minute
	officeCacheKeyPrefix = "offices:"
)

// OfficeServiceOptions groups dependencies for OfficeService.
type OfficeServiceOptions struct {
	Offices  core.OfficeRepository
	Cache    core.CacheRepository // optional, nil disables caching
	CacheTTL time.Duration        // optional, defaults to officeCacheTTL
	Logger   DebugLogger          // optional
}

// OfficeService provides office CRUD with a read-through cache for
// single-office lookups and listing pages. Writes invalidate the whole
// office prefix rather than tracking individual pages.
type OfficeService struct {
	offices  core.OfficeRepository
	cache    core.CacheRepository
	cacheTTL time.Duration
	log      DebugLogger
}

// NewOfficeService constructs a new OfficeService.
func NewOfficeService(opts OfficeServiceOptions) *OfficeService {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = officeCacheTTL
	}
	return &OfficeService{
		offices:  opts.Offices,
		cache:    opts.Cache,
		cacheTTL: ttl,
		log:      opts.Logger,
	}
}

// OfficeListResult is a page of offices plus the unpaged total.
type OfficeListResult struct {
	Items []*model.Office `json:"items"`
	Total int64           `json:"total"`
}

// Create creates an office and invalidates cached office reads.
func (s *OfficeService) Create(ctx context.Context, req *model.CreateOfficeRequest) (*model.Office, error) {
	if req == nil {
		return nil, apperrors.Validation("create office request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	office, err := s.offices.Create(ctx, req)
	if err != nil {
		return nil, mapOfficeWriteErr(err)
	}
	s.invalidate(ctx)
	return office, nil
}

// GetByID returns an office by ID, serving from cache when possible.
func (s *OfficeService) GetByID(ctx context.Context, id string) (*model.Office, error) {
	key := officeCacheKeyPrefix + "id:" + id
	if cached := s.cacheGet(ctx, key); cached != nil {
		var office model.Office
		if err := json.Unmarshal(cached, &office); err == nil {
			return &office, nil
		}
	}

	office, err := s.offices.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrOfficeNotFound) {
			return nil, apperrors.NotFound("office not found")
		}
		return nil, fmt.Errorf("get office: %w", err)
	}
	s.cacheSet(ctx, key, office)
	return office, nil
}

// List returns a page of offices with the total matching count. Pages
// are cached per filter combination.
func (s *OfficeService) List(ctx context.Context, opts model.OfficeListOptions) (*OfficeListResult, error) {
	key := officeListCacheKey(opts)
	if cached := s.cacheGet(ctx, key); cached != nil {
		var result OfficeListResult
		if err := json.Unmarshal(cached, &result); err == nil {
			return &result, nil
		}
	}

	offices, err := s.offices.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list offices: %w", err)
	}
	total, err := s.offices.Count(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("count offices: %w", err)
	}
	result := &OfficeListResult{Items: offices, Total: total}
	s.cacheSet(ctx, key, result)
	return result, nil
}

// Update applies a partial update and invalidates cached office reads.
func (s *OfficeService) Update(ctx context.Context, id string, req model.UpdateOfficeRequest) (*model.Office, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	office, err := s.offices.Update(ctx, id, req)
	if err != nil {
		return nil, mapOfficeWriteErr(err)
	}
	s.invalidate(ctx)
	return office, nil
}

// Delete removes an office. Offices with rooms are blocked by foreign
// keys and surface as a conflict.
func (s *OfficeService) Delete(ctx context.Context, id string) error {
	ok, err := s.offices.Delete(ctx, id)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	if !ok {
		return apperrors.NotFound("office not found")
	}
	s.invalidate(ctx)
	return nil
}

func (s *OfficeService) cacheGet(ctx context.Context, key string) []byte {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if s.log != nil {
			s.log.Debug("office cache get failed", "key", key, "error", err)
		}
		return nil
	}
	return data
}

func (s *OfficeService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil && s.log != nil {
		s.log.Debug("office cache set failed", "key", key, "error", err)
	}
}

func (s *OfficeService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPrefix(ctx, officeCacheKeyPrefix); err != nil && s.log != nil {
		s.log.Debug("office cache invalidation failed", "error", err)
	}
}

// officeListCacheKey encodes the filter set so distinct queries never
// share a cache entry.
func officeListCacheKey(opts model.OfficeListOptions) string {
	var b strings.Builder
	b.WriteString(officeCacheKeyPrefix)
	b.WriteString("list:")
	fmt.Fprintf(&b, "limit=%d&offset=%d", opts.Limit, opts.Offset)
	if opts.Name != nil {
		fmt.Fprintf(&b, "&name=%s", *opts.Name)
	}
	if opts.Address != nil {
		fmt.Fprintf(&b, "&address=%s", *opts.Address)
	}
	if opts.Active != nil {
		fmt.Fprintf(&b, "&active=%t", *opts.Active)
	}
	if opts.Sort != "" {
		fmt.Fprintf(&b, "&sort=%s&dir=%s", opts.Sort, opts.Dir)
	}
	return b.String()
}

func mapOfficeWriteErr(err error) error {
	switch {
	case errors.Is(err, data.ErrOfficeNotFound):
		return apperrors.NotFound("office not found")
	case errors.Is(err, data.ErrOfficeNameExists):
		e := apperrors.Conflict("an office with this name already exists")
		e.Field = "name"
		return e
	default:
		return apperrors.MapDBError(err)
	}
}
