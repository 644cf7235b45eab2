package request

import (
	"strings"
	"time"

	"consultoria_xpto/internal/domain/analytics"
	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day format accepted for dates.
const DateLayout = "2006-01-02"

// EngagementRequest is the payload for registering an engagement.
// Money fields accept a decimal string ("1500.00") or a JSON number.
type EngagementRequest struct {
	ClientName      string           `json:"client_name" binding:"required"`
	Type            string           `json:"type" binding:"required"`
	Tier            string           `json:"tier" binding:"required"`
	Consultant      string           `json:"consultant"`
	StartDate       string           `json:"start_date" binding:"required"`
	EndDate         string           `json:"end_date"`
	ConsultingValue decimal.Decimal  `json:"consulting_value"`
	BonusValue      *decimal.Decimal `json:"bonus_value"`
	ClosureSigned   bool             `json:"closure_signed"`
}

func (r EngagementRequest) ToCommand() (usecase.NewEngagement, error) {
	start, err := parseDate("start_date", r.StartDate)
	if err != nil {
		return usecase.NewEngagement{}, err
	}
	var end time.Time
	if strings.TrimSpace(r.EndDate) != "" {
		if end, err = parseDate("end_date", r.EndDate); err != nil {
			return usecase.NewEngagement{}, err
		}
	}
	bonus := decimal.Zero
	if r.BonusValue != nil {
		bonus = *r.BonusValue
	}
	return usecase.NewEngagement{
		ClientName:      r.ClientName,
		Type:            entities.EngagementType(strings.TrimSpace(r.Type)),
		Tier:            r.Tier,
		Consultant:      r.Consultant,
		StartDate:       start,
		EndDate:         end,
		ConsultingValue: r.ConsultingValue,
		BonusValue:      bonus,
		ClosureSigned:   r.ClosureSigned,
	}, nil
}

// UpdateEngagementRequest is a partial edit; omitted fields stay unchanged.
type UpdateEngagementRequest struct {
	ClientName      *string          `json:"client_name"`
	Type            *string          `json:"type"`
	Tier            *string          `json:"tier"`
	Consultant      *string          `json:"consultant"`
	StartDate       *string          `json:"start_date"`
	EndDate         *string          `json:"end_date"`
	ConsultingValue *decimal.Decimal `json:"consulting_value"`
	BonusValue      *decimal.Decimal `json:"bonus_value"`
	ClosureSigned   *bool            `json:"closure_signed"`
	Bonused         *bool            `json:"bonused"`
}

func (r UpdateEngagementRequest) ToChanges() (usecase.EngagementChanges, error) {
	changes := usecase.EngagementChanges{
		ClientName:      r.ClientName,
		Tier:            r.Tier,
		Consultant:      r.Consultant,
		ConsultingValue: r.ConsultingValue,
		BonusValue:      r.BonusValue,
		ClosureSigned:   r.ClosureSigned,
		Bonused:         r.Bonused,
	}
	if r.Type != nil {
		t := entities.EngagementType(strings.TrimSpace(*r.Type))
		changes.Type = &t
	}
	if r.StartDate != nil {
		start, err := parseDate("start_date", *r.StartDate)
		if err != nil {
			return usecase.EngagementChanges{}, err
		}
		changes.StartDate = &start
	}
	if r.EndDate != nil {
		end, err := parseDate("end_date", *r.EndDate)
		if err != nil {
			return usecase.EngagementChanges{}, err
		}
		changes.EndDate = &end
	}
	return changes, nil
}

// CompleteEngagementRequest closes an engagement. A null or missing rating
// completes it unrated, which grants no commission.
type CompleteEngagementRequest struct {
	Rating         *int    `json:"rating"`
	CompletionDate *string `json:"completion_date"`
	Bonused        *bool   `json:"bonused"`
}

func (r CompleteEngagementRequest) ToCommand() (usecase.CompleteEngagement, error) {
	rating, err := entities.RatingFromPtr(r.Rating)
	if err != nil {
		return usecase.CompleteEngagement{}, err
	}
	cmd := usecase.CompleteEngagement{Rating: rating, Bonused: r.Bonused}
	if r.CompletionDate != nil && strings.TrimSpace(*r.CompletionDate) != "" {
		done, err := parseDate("completion_date", *r.CompletionDate)
		if err != nil {
			return usecase.CompleteEngagement{}, err
		}
		cmd.CompletionDate = &done
	}
	return cmd, nil
}

// FilterQuery binds the list and dashboard query string.
type FilterQuery struct {
	Consultant string `form:"consultant"`
	Type       string `form:"type"`
	Status     string `form:"status"`
	From       string `form:"from"`
	To         string `form:"to"`
}

func (q FilterQuery) ToFilterSpec() (analytics.FilterSpec, error) {
	spec := analytics.FilterSpec{
		Consultant: q.Consultant,
		Type:       q.Type,
		Status:     q.Status,
	}
	if strings.TrimSpace(q.From) != "" {
		from, err := parseDate("from", q.From)
		if err != nil {
			return analytics.FilterSpec{}, err
		}
		spec.From = &from
	}
	if strings.TrimSpace(q.To) != "" {
		to, err := parseDate("to", q.To)
		if err != nil {
			return analytics.FilterSpec{}, err
		}
		spec.To = &to
	}
	return spec, nil
}

// parseDate accepts YYYY-MM-DD, and RFC3339 for clients sending timestamps.
func parseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, entities.NewValidationError(field, "must be a date in YYYY-MM-DD format")
}
