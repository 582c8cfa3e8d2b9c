// internal/fusion/service.go

package fusion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/imadgeboyega/destiny-fusion/internal/cache"
	"github.com/imadgeboyega/destiny-fusion/internal/compat"
	"github.com/imadgeboyega/destiny-fusion/internal/matrix"
	"github.com/imadgeboyega/destiny-fusion/internal/saju"
)

var (
	ErrInsufficientData = errors.New("insufficient chart data for this analysis")
)

type Service interface {
	Compatibility(ctx context.Context, req *CompatibilityRequest) (*compat.Result, error)
	Matrix(ctx context.Context, req *MatrixRequest) (*MatrixResponse, error)
	Daeun(ctx context.Context, req *DaeunRequest) (*saju.DaeunCompatibility, error)
	Seun(ctx context.Context, req *SeunRequest) (*saju.SeunCompatibility, error)
	Yongsin(ctx context.Context, req *YongsinRequest) (*saju.YongsinCompatibility, error)

	MatrixSummary() matrix.Summary
	CacheStats() cache.Stats
	ClearCache(ctx context.Context) error
}

type service struct {
	cache       *cache.Cache
	topInsights int
}

// NewService wires the scorers behind the result cache. A nil cache computes every call.
func NewService(c *cache.Cache, topInsights int) Service {
	if topInsights <= 0 {
		topInsights = matrix.DefaultTopInsights
	}
	return &service{cache: c, topInsights: topInsights}
}

func (s *service) Compatibility(ctx context.Context, req *CompatibilityRequest) (res *compat.Result, err error) {
	defer func(start time.Time) { observe("compatibility", start, err) }(time.Now())

	key, err := cache.Key("compat", req.Person1, req.Person2)
	if err != nil {
		return nil, fmt.Errorf("compatibility cache key: %w", err)
	}
	res, err = cache.Memoize(ctx, s.cache, key, func() (*compat.Result, error) {
		return compat.Calculate(req.Person1, req.Person2), nil
	})
	if err != nil {
		return nil, err
	}
	compatibilityScores.Observe(float64(res.OverallScore))
	return res, nil
}

func (s *service) Matrix(ctx context.Context, req *MatrixRequest) (resp *MatrixResponse, err error) {
	defer func(start time.Time) { observe("matrix", start, err) }(time.Now())

	opts := req.Options
	if opts.TopInsights <= 0 {
		opts.TopInsights = s.topInsights
	}
	key, err := cache.Key("matrix", req.Saju, req.Astro, opts)
	if err != nil {
		return nil, fmt.Errorf("matrix cache key: %w", err)
	}
	report, err := cache.Memoize(ctx, s.cache, key, func() (*matrix.Report, error) {
		return matrix.CalculateFromProfiles(req.Saju, req.Astro, opts), nil
	})
	if err != nil {
		return nil, err
	}
	matrixScores.Observe(float64(report.OverallScore))
	return &MatrixResponse{ID: uuid.New().String(), Report: report}, nil
}

func (s *service) Daeun(ctx context.Context, req *DaeunRequest) (res *saju.DaeunCompatibility, err error) {
	defer func(start time.Time) { observe("daeun", start, err) }(time.Now())

	key, err := cache.Key("daeun", req.Saju1, req.Saju2, req.Age1, req.Age2)
	if err != nil {
		return nil, fmt.Errorf("daeun cache key: %w", err)
	}
	return cache.Memoize(ctx, s.cache, key, func() (*saju.DaeunCompatibility, error) {
		r, ok := saju.AnalyzeDaeunCompatibility(req.Saju1, req.Saju2, req.Age1, req.Age2)
		if !ok {
			return nil, ErrInsufficientData
		}
		return r, nil
	})
}

func (s *service) Seun(ctx context.Context, req *SeunRequest) (res *saju.SeunCompatibility, err error) {
	defer func(start time.Time) { observe("seun", start, err) }(time.Now())

	key, err := cache.Key("seun", req.Saju1, req.Saju2, req.Year)
	if err != nil {
		return nil, fmt.Errorf("seun cache key: %w", err)
	}
	return cache.Memoize(ctx, s.cache, key, func() (*saju.SeunCompatibility, error) {
		r, ok := saju.AnalyzeSeunCompatibility(req.Saju1, req.Saju2, req.Year)
		if !ok {
			return nil, ErrInsufficientData
		}
		return r, nil
	})
}

func (s *service) Yongsin(ctx context.Context, req *YongsinRequest) (res *saju.YongsinCompatibility, err error) {
	defer func(start time.Time) { observe("yongsin", start, err) }(time.Now())

	key, err := cache.Key("yongsin", req.Saju1, req.Saju2)
	if err != nil {
		return nil, fmt.Errorf("yongsin cache key: %w", err)
	}
	return cache.Memoize(ctx, s.cache, key, func() (*saju.YongsinCompatibility, error) {
		r, ok := saju.AnalyzeYongsinCompatibility(req.Saju1, req.Saju2)
		if !ok {
			return nil, ErrInsufficientData
		}
		return r, nil
	})
}

func (s *service) MatrixSummary() matrix.Summary {
	return matrix.Summarize()
}

func (s *service) CacheStats() cache.Stats {
	if s.cache == nil {
		return cache.Stats{Backend: cache.NoopBackend{}.Name()}
	}
	return s.cache.Stats()
}

func (s *service) ClearCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Clear(ctx); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}
