package employee

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// fileRepository mirrors the memory driver but rewrites the whole JSON
// file on every mutation. The file is the source of truth only across
// restarts; live reads are served from memory.
type fileRepository struct {
	mu    sync.Mutex
	path  string
	empls []Employee
}

func NewFileRepository(path string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	r := &fileRepository{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read storage file: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &r.empls); err != nil {
			return nil, fmt.Errorf("parse storage file %s: %w", path, err)
		}
	}
	return r, nil
}

// persist writes to a temp file first and renames it into place so a
// crash mid-write never truncates the store. Callers hold the mutex.
func (r *fileRepository) persist() error {
	data, err := json.MarshalIndent(r.empls, "", "  ")
	if err != nil {
		return err
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}

func (r *fileRepository) FindAll(ctx context.Context) ([]Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Employee, len(r.empls))
	copy(out, r.empls)
	return out, nil
}

func (r *fileRepository) FindByID(ctx context.Context, id string) (*Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.empls {
		if r.empls[i].ID.String() == id {
			empl := r.empls[i]
			return &empl, nil
		}
	}
	return nil, nil
}

func (r *fileRepository) Create(ctx context.Context, empl *Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if empl.ID == uuid.Nil {
		empl.ID = uuid.New()
	}
	now := time.Now().UTC()
	empl.CreatedAt = now
	empl.UpdatedAt = now

	r.empls = append([]Employee{*empl}, r.empls...)
	if err := r.persist(); err != nil {
		r.empls = r.empls[1:]
		return err
	}
	return nil
}

func (r *fileRepository) Update(ctx context.Context, empl *Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	empl.UpdatedAt = time.Now().UTC()
	for i := range r.empls {
		if r.empls[i].ID == empl.ID {
			prev := r.empls[i]
			r.empls[i] = *empl
			if err := r.persist(); err != nil {
				r.empls[i] = prev
				return err
			}
			return nil
		}
	}
	return nil
}

func (r *fileRepository) Delete(ctx context.Context, id string) (*Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.empls {
		if r.empls[i].ID.String() == id {
			empl := r.empls[i]
			r.empls = append(r.empls[:i], r.empls[i+1:]...)
			if err := r.persist(); err != nil {
				r.empls = append(r.empls[:i], append([]Employee{empl}, r.empls[i:]...)...)
				return nil, err
			}
			return &empl, nil
		}
	}
	return nil, nil
}

func (r *fileRepository) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.empls {
		if r.empls[i].Email == email && r.empls[i].ID.String() != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fileRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.empls)), nil
}
