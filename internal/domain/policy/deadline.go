package policy

import (
	"consultoria_xpto/internal/domain/entities"
)

// DefaultMaxDaysForUnknownTier is the maximum duration applied to tiers
// missing from the lookup table.
const DefaultMaxDaysForUnknownTier = 30

// DefaultTierMaxDays is the maximum allowed duration, in days, per size tier.
func DefaultTierMaxDays() map[string]int {
	return map[string]int{
		entities.TierBasic:      15,
		entities.TierStarter:    25,
		entities.TierPro:        40,
		entities.TierEnterprise: 60,
	}
}

// DeadlinePolicy decides whether an engagement finished within the maximum
// duration allowed for its tier.
//
// Tier lookup is exact (case-sensitive). A DeadlinePolicy is immutable after
// construction and safe for concurrent use.
type DeadlinePolicy struct {
	maxDays        map[string]int
	defaultMaxDays int
}

// NewDeadlinePolicy builds a policy from a tier table and the default used
// for tiers missing from it.
func NewDeadlinePolicy(maxDays map[string]int, defaultMaxDays int) (DeadlinePolicy, error) {
	if defaultMaxDays < 0 {
		return DeadlinePolicy{}, entities.NewValidationError("default_max_days", "must not be negative")
	}
	table := make(map[string]int, len(maxDays))
	for tier, days := range maxDays {
		if days < 0 {
			return DeadlinePolicy{}, entities.NewValidationError("max_days", "tier "+tier+" must not be negative")
		}
		table[tier] = days
	}
	return DeadlinePolicy{maxDays: table, defaultMaxDays: defaultMaxDays}, nil
}

// DefaultDeadlinePolicy returns the standard tier table with a 30 day default.
func DefaultDeadlinePolicy() DeadlinePolicy {
	p, _ := NewDeadlinePolicy(DefaultTierMaxDays(), DefaultMaxDaysForUnknownTier)
	return p
}

// MaxDays returns the maximum allowed days for tier and whether the tier is
// known. Unknown tiers get the default.
func (p DeadlinePolicy) MaxDays(tier string) (int, bool) {
	if days, ok := p.maxDays[tier]; ok {
		return days, true
	}
	return p.defaultMaxDays, false
}

// Evaluate reports durationDays <= MaxDays(tier). A negative duration is a
// *entities.ValidationError.
func (p DeadlinePolicy) Evaluate(tier string, durationDays int) (bool, error) {
	if durationDays < 0 {
		return false, entities.NewValidationError("duration_days", "must not be negative")
	}
	maxDays, _ := p.MaxDays(tier)
	return durationDays <= maxDays, nil
}
