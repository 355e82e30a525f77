package employee

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// SeedSampleData inserts the starter directory on first boot so the
// dashboard is never empty. A populated store is left alone.
func (s *service) SeedSampleData(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return mapRepositoryError(err)
	}
	if count > 0 {
		return nil
	}

	samples := []Employee{
		{
			Name:       "John Doe",
			Position:   "Software Engineer",
			Email:      "john.doe@company.com",
			Department: "Engineering",
			Phone:      "+1 (555) 123-4567",
			StartDate:  mustDate("2023-01-15"),
			Salary:     75000,
			Status:     StatusActive,
		},
		{
			Name:       "Jane Smith",
			Position:   "Product Manager",
			Email:      "jane.smith@company.com",
			Department: "Product",
			Phone:      "+1 (555) 234-5678",
			StartDate:  mustDate("2023-03-20"),
			Salary:     85000,
			Status:     StatusActive,
		},
		{
			Name:       "Mike Johnson",
			Position:   "UX Designer",
			Email:      "mike.johnson@company.com",
			Department: "Design",
			Phone:      "+1 (555) 345-6789",
			StartDate:  mustDate("2023-02-10"),
			Salary:     70000,
			Status:     StatusActive,
		},
	}

	for i := range samples {
		if err := s.repo.Create(ctx, &samples[i]); err != nil {
			return mapRepositoryError(err)
		}
	}

	s.logger.Info("sample employees inserted", zap.Int("count", len(samples)))
	return nil
}

func mustDate(v string) time.Time {
	d, err := time.Parse(dateLayout, v)
	if err != nil {
		panic(err)
	}
	return d
}
