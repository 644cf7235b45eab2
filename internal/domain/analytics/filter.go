package analytics

import (
	"strings"
	"time"

	"consultoria_xpto/internal/domain/entities"
)

// Sentinels meaning "no constraint" for a string filter field.
const (
	FilterAll   = "all"
	FilterTodos = "todos"
)

// FilterSpec selects engagements. Every field is optional and supplied
// fields are combined with AND.
//
// Consultant is an exact, case-sensitive match. The date range is a
// containment filter: start >= From and end <= To, compared by calendar day.
// An engagement that only overlaps the window is excluded.
type FilterSpec struct {
	Consultant string     `json:"consultant,omitempty"`
	Type       string     `json:"type,omitempty"`
	Status     string     `json:"status,omitempty"`
	From       *time.Time `json:"from,omitempty"`
	To         *time.Time `json:"to,omitempty"`
}

// IsUnconstrained reports whether v means "no constraint".
func IsUnconstrained(v string) bool {
	switch strings.TrimSpace(v) {
	case "", FilterAll, FilterTodos:
		return true
	}
	return false
}

// IsEmpty reports whether the spec constrains nothing.
func (s FilterSpec) IsEmpty() bool {
	return IsUnconstrained(s.Consultant) && IsUnconstrained(s.Type) && IsUnconstrained(s.Status) &&
		s.From == nil && s.To == nil
}

// Matches reports whether e satisfies every supplied constraint.
func (s FilterSpec) Matches(e entities.Engagement) bool {
	if !IsUnconstrained(s.Consultant) && e.Consultant != s.Consultant {
		return false
	}
	if !IsUnconstrained(s.Type) && string(e.Type) != s.Type {
		return false
	}
	if !IsUnconstrained(s.Status) && string(e.Status) != s.Status {
		return false
	}
	if s.From != nil {
		if e.StartDate.IsZero() || day(e.StartDate).Before(day(*s.From)) {
			return false
		}
	}
	if s.To != nil {
		if e.EndDate.IsZero() || day(e.EndDate).After(day(*s.To)) {
			return false
		}
	}
	return true
}

// Filter returns the records matching spec, preserving input order.
// The input slice is not modified.
func Filter(records []entities.Engagement, spec FilterSpec) []entities.Engagement {
	out := make([]entities.Engagement, 0, len(records))
	for _, e := range records {
		if spec.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
