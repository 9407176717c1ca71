package services

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/openlms/lms/internal/app/repositories"
	"github.com/openlms/lms/pkg/api"
)

// StatisticsService defines the interface for dashboard statistics
type StatisticsService interface {
	TotalUsers(ctx context.Context) (int64, error)
	TotalClasses(ctx context.Context) (int64, error)
	TotalCourses(ctx context.Context) (int64, error)
	TotalAssignments(ctx context.Context) (int64, error)
	Overview(ctx context.Context) (*api.Overview, error)
}

// statisticsServiceImpl implements StatisticsService
type statisticsServiceImpl struct {
	statsRepo *repositories.StatisticsRepository
	logger    zerolog.Logger
}

// NewStatisticsService creates a new StatisticsService
func NewStatisticsService(statsRepo *repositories.StatisticsRepository, logger zerolog.Logger) StatisticsService {
	return &statisticsServiceImpl{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// TotalUsers counts user profiles
func (s *statisticsServiceImpl) TotalUsers(ctx context.Context) (int64, error) {
	return s.statsRepo.CountUsers(ctx)
}

// TotalClasses counts enrollments
func (s *statisticsServiceImpl) TotalClasses(ctx context.Context) (int64, error) {
	return s.statsRepo.CountClasses(ctx)
}

// TotalCourses counts courses
func (s *statisticsServiceImpl) TotalCourses(ctx context.Context) (int64, error) {
	return s.statsRepo.CountCourses(ctx)
}

// TotalAssignments counts assessments
func (s *statisticsServiceImpl) TotalAssignments(ctx context.Context) (int64, error) {
	return s.statsRepo.CountAssignments(ctx)
}

// Overview fans the four dashboard counts out concurrently and joins
// the results. One failing count fails the whole overview.
func (s *statisticsServiceImpl) Overview(ctx context.Context) (*api.Overview, error) {
	var overview api.Overview

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.statsRepo.CountUsers(ctx)
		overview.TotalUsers = n
		return err
	})
	g.Go(func() error {
		n, err := s.statsRepo.CountClasses(ctx)
		overview.TotalClasses = n
		return err
	})
	g.Go(func() error {
		n, err := s.statsRepo.CountCourses(ctx)
		overview.TotalCourses = n
		return err
	})
	g.Go(func() error {
		n, err := s.statsRepo.CountAssignments(ctx)
		overview.TotalAssignments = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}
