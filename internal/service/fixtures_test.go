package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/boarding-admin-api/internal/models"
	"github.com/noah-isme/boarding-admin-api/internal/repository"
)

// memStudents is an in-memory student registry used across service tests.
type memStudents struct {
	byID    map[string]*models.Student
	findErr error
}

func newMemStudents(students ...models.Student) *memStudents {
	m := &memStudents{byID: make(map[string]*models.Student)}
	for i := range students {
		s := students[i]
		m.byID[s.ID] = &s
	}
	return m
}

func (m *memStudents) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error) {
	out := make([]models.Student, 0, len(m.byID))
	for _, s := range m.byID {
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		out = append(out, *s)
	}
	return out, len(out), nil
}

func (m *memStudents) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	s, ok := m.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *s
	return &clone, nil
}

func (m *memStudents) ExistsByCode(ctx context.Context, code string, excludeID string) (bool, error) {
	for id, s := range m.byID {
		if s.StudentCode == code && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStudents) Create(ctx context.Context, student *models.Student) error {
	student.ID = uuid.NewString()
	student.CreatedAt = time.Now().UTC()
	student.UpdatedAt = student.CreatedAt
	clone := *student
	m.byID[student.ID] = &clone
	return nil
}

func (m *memStudents) Update(ctx context.Context, student *models.Student) error {
	if _, ok := m.byID[student.ID]; !ok {
		return sql.ErrNoRows
	}
	clone := *student
	m.byID[student.ID] = &clone
	return nil
}

func (m *memStudents) Delete(ctx context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.byID, id)
	return nil
}

// memStaff is an in-memory laundry staff registry.
type memStaff struct {
	byID map[string]*models.LaundryStaff
}

func newMemStaff(staff ...models.LaundryStaff) *memStaff {
	m := &memStaff{byID: make(map[string]*models.LaundryStaff)}
	for i := range staff {
		s := staff[i]
		m.byID[s.ID] = &s
	}
	return m
}

func (m *memStaff) List(ctx context.Context, status string) ([]models.LaundryStaff, error) {
	out := make([]models.LaundryStaff, 0, len(m.byID))
	for _, s := range m.byID {
		if status == "" || s.Status == status {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memStaff) FindByID(ctx context.Context, id string) (*models.LaundryStaff, error) {
	s, ok := m.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	clone := *s
	return &clone, nil
}

func (m *memStaff) Create(ctx context.Context, staff *models.LaundryStaff) error {
	staff.ID = uuid.NewString()
	clone := *staff
	m.byID[staff.ID] = &clone
	return nil
}

func (m *memStaff) Update(ctx context.Context, staff *models.LaundryStaff) error {
	if _, ok := m.byID[staff.ID]; !ok {
		return sql.ErrNoRows
	}
	clone := *staff
	m.byID[staff.ID] = &clone
	return nil
}

func (m *memStaff) Delete(ctx context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.byID, id)
	return nil
}

// newTestCache wires a CacheService to a throwaway miniredis instance.
func newTestCache(t *testing.T) (*CacheService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := NewCacheService(repository.NewCacheRepository(client), NewMetricsService(), time.Minute, zap.NewNop(), true)
	return cache, mr
}

func floatPtr(v float64) *float64 { return &v }
