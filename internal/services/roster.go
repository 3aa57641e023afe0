package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meetin/meetin/internal/models"
	"github.com/meetin/meetin/internal/validation"
)

// Roster is the dashboard's visitor list. It is never persisted; a new
// dashboard starts with a new Roster. The newest entry is always first.
type Roster struct {
	mu       sync.RWMutex
	visitors []models.Visitor
	now      func() time.Time
}

func NewRoster() *Roster {
	return &Roster{now: time.Now}
}

// Add prepends a visitor named name (trimmed). Blank names give ErrMissingName.
func (r *Roster) Add(name string) (models.Visitor, error) {
	if err := validation.VisitorName(name); err != nil {
		return models.Visitor{}, err
	}
	return r.prepend(strings.TrimSpace(name), nil)
}

// AddDetailed validates the visitor form and prepends an entry carrying it.
func (r *Roster) AddDetailed(d models.VisitorDetails) (models.Visitor, error) {
	if err := validation.VisitorDetails(d); err != nil {
		return models.Visitor{}, err
	}
	d.Name = strings.TrimSpace(d.Name)
	return r.prepend(d.Name, &d)
}

func (r *Roster) prepend(name string, details *models.VisitorDetails) (models.Visitor, error) {
	// UUIDv7 leads with a millisecond timestamp and stays unique within one
	// millisecond.
	id, err := uuid.NewV7()
	if err != nil {
		return models.Visitor{}, fmt.Errorf("visitor id: %w", err)
	}

	v := models.Visitor{ID: id.String(), Name: name, CreatedAt: r.now(), Details: details}

	r.mu.Lock()
	r.visitors = append([]models.Visitor{v}, r.visitors...)
	r.mu.Unlock()

	return v, nil
}

// List returns a copy of the roster, most recent first.
func (r *Roster) List() []models.Visitor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Visitor, len(r.visitors))
	copy(out, r.visitors)
	return out
}

func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.visitors)
}
