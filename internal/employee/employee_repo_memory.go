package employee

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryRepository keeps the directory in a process-local slice, newest
// first. Each operation completes under the mutex, so reads always see the
// latest finished write from this process.
type memoryRepository struct {
	mu    sync.RWMutex
	empls []Employee
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) FindAll(ctx context.Context) ([]Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Employee, len(r.empls))
	copy(out, r.empls)
	return out, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.empls {
		if r.empls[i].ID.String() == id {
			empl := r.empls[i]
			return &empl, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) Create(ctx context.Context, empl *Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if empl.ID == uuid.Nil {
		empl.ID = uuid.New()
	}
	now := time.Now().UTC()
	empl.CreatedAt = now
	empl.UpdatedAt = now

	// Prepend to keep list order newest-first.
	r.empls = append([]Employee{*empl}, r.empls...)
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, empl *Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	empl.UpdatedAt = time.Now().UTC()
	for i := range r.empls {
		if r.empls[i].ID == empl.ID {
			r.empls[i] = *empl
			return nil
		}
	}
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id string) (*Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.empls {
		if r.empls[i].ID.String() == id {
			empl := r.empls[i]
			r.empls = append(r.empls[:i], r.empls[i+1:]...)
			return &empl, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.empls {
		if r.empls[i].Email == email && r.empls[i].ID.String() != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.empls)), nil
}
