package dashboard

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/Maxwellrubert/employee-dashboard/internal/employee"
)

const recentHireWindow = 30 * 24 * time.Hour

type Service interface {
	Stats(ctx context.Context) (Stats, error)
}

type service struct {
	repo   employee.Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		repo:   repo,
		logger: l,
		now:    time.Now,
	}
}

// Stats reads the full directory and aggregates it. Nothing is cached;
// every call recomputes from the adapter's current state.
func (s *service) Stats(ctx context.Context) (Stats, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("dashboard stats fetch failed", zap.Error(err))
		return Stats{}, err
	}
	return Aggregate(empls, s.now()), nil
}

// Aggregate derives the summary metrics in a single pass. Pure function
// of its input; now anchors the 30-day recent-hire window (inclusive
// lower bound).
func Aggregate(empls []employee.Employee, now time.Time) Stats {
	stats := Stats{
		TotalEmployees:      len(empls),
		DepartmentBreakdown: make(map[string]int),
	}

	cutoff := now.Add(-recentHireWindow)
	salarySum := 0

	for i := range empls {
		e := &empls[i]

		if e.Status == employee.StatusActive {
			stats.ActiveEmployees++
		}
		stats.DepartmentBreakdown[e.Department]++
		salarySum += e.Salary
		if !e.StartDate.Before(cutoff) {
			stats.RecentHires++
		}
	}

	stats.Departments = len(stats.DepartmentBreakdown)
	if len(empls) > 0 {
		stats.AverageSalary = int(math.Round(float64(salarySum) / float64(len(empls))))
	}
	return stats
}
