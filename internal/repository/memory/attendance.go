package memory

import (
	"context"
	"sync"
	"time"

	"github.com/akademika/hris-backend-go/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu      sync.RWMutex
	records map[string]*attendance.Record
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{records: make(map[string]*attendance.Record)}
}

func (r *AttendanceRepository) Seed(records ...*attendance.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range records {
		r.records[rec.ID] = rec
	}
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string) (*attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok || rec.DeletedAt != nil {
		return nil, attendance.ErrRecordNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *AttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.DeletedAt == nil && rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, attendance.ErrRecordNotFound
}

func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]*attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*attendance.Record, 0)
	for _, rec := range r.records {
		if rec.DeletedAt != nil || rec.EmployeeID != employeeID {
			continue
		}
		if rec.Date.Before(from) || rec.Date.After(to) {
			continue
		}
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func (r *AttendanceRepository) Create(ctx context.Context, rec *attendance.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.DeletedAt == nil && existing.EmployeeID == rec.EmployeeID && existing.Date.Equal(rec.Date) {
			return attendance.ErrAlreadyClockedIn
		}
	}
	cp := *rec
	r.records[rec.ID] = &cp
	return nil
}

func (r *AttendanceRepository) Update(ctx context.Context, rec *attendance.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.records[rec.ID]
	if !ok || existing.DeletedAt != nil {
		return attendance.ErrRecordNotFound
	}
	cp := *rec
	r.records[rec.ID] = &cp
	return nil
}

func (r *AttendanceRepository) SoftDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok || rec.DeletedAt != nil {
		return attendance.ErrRecordNotFound
	}
	now := time.Now()
	rec.DeletedAt = &now
	return nil
}
