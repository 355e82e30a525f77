package employee

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock

// Repository is the storage adapter behind the employee service. One
// implementation is selected at startup (postgres, file or memory).
// Absent records come back as (nil, nil); uniqueness is the service's job
// via EmailExists, adapters only persist.
type Repository interface {
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Create(ctx context.Context, empl *Employee) error
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) (*Employee, error)
	EmailExists(ctx context.Context, email, excludeID string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&empls).Error
	return empls, err
}

func (r *gormRepository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *gormRepository) Create(ctx context.Context, empl *Employee) error {
	if empl.ID == uuid.Nil {
		empl.ID = uuid.New()
	}
	now := time.Now().UTC()
	empl.CreatedAt = now
	empl.UpdatedAt = now
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *gormRepository) Update(ctx context.Context, empl *Employee) error {
	empl.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *gormRepository) Delete(ctx context.Context, id string) (*Employee, error) {
	empl, err := r.FindByID(ctx, id)
	if err != nil || empl == nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return empl, nil
}

func (r *gormRepository) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("email = ?", email)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Employee{}).Count(&count).Error
	return count, err
}
