package policy

import (
	"consultoria_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// minBonusRating is the lowest rating that earns any commission.
const minBonusRating = 4

var hundred = decimal.NewFromInt(100)

// Commission is the outcome of the commission rule for one engagement.
type Commission struct {
	Percent int             `json:"percent"`
	Value   decimal.Decimal `json:"value"`
}

// CalculateCommission applies the commission rule:
//
//	rating absent or <= 3         -> 0%
//	rating >= 4, deadline missed  -> 8%
//	rating >= 4, deadline met     -> 12%
//
// Value is consultingValue * percent / 100 in exact decimal arithmetic.
// A rating outside 1..5 or a negative consulting value is rejected.
func CalculateCommission(rating entities.Rating, deadlineMet bool, consultingValue decimal.Decimal) (Commission, error) {
	if consultingValue.IsNegative() {
		return Commission{}, entities.NewValidationError("consulting_value", "must not be negative")
	}
	percent := entities.CommissionPercentNone
	if r, ok := rating.Value(); ok {
		if r < entities.MinRating || r > entities.MaxRating {
			return Commission{}, entities.NewValidationError("rating", "must be between 1 and 5")
		}
		switch {
		case r < minBonusRating:
			percent = entities.CommissionPercentNone
		case !deadlineMet:
			percent = entities.CommissionPercentLate
		default:
			percent = entities.CommissionPercentOnTime
		}
	}
	return Commission{
		Percent: percent,
		Value:   CommissionValue(consultingValue, percent),
	}, nil
}

// CommissionValue returns consultingValue * percent / 100.
func CommissionValue(consultingValue decimal.Decimal, percent int) decimal.Decimal {
	return consultingValue.Mul(decimal.NewFromInt(int64(percent))).Div(hundred)
}
