package matching

import "strings"

// Tier is the discrete recommendation level derived from both the numeric
// score and exact-match coverage.
type Tier string

const (
	TierPerfect Tier = "perfect"
	TierGood    Tier = "good"
	TierPartial Tier = "partial"
	TierStretch Tier = "stretch"
)

// Classify gates on score AND exact coverage, first match wins. A candidate
// can carry a clamped score of 100 from experience and department bonuses
// alone and still land in "stretch" when exact coverage is too low.
func Classify(score, exactCount, requiredCount int) Tier {
	exact := float64(exactCount)
	required := float64(requiredCount)

	switch {
	case score >= 80 && exact >= 0.8*required:
		return TierPerfect
	case score >= 60 && exact >= 0.6*required:
		return TierGood
	case score >= 40 && exact >= 0.4*required:
		return TierPartial
	default:
		return TierStretch
	}
}

// ParseTier maps a free-text label to a known tier.
func ParseTier(s string) (Tier, bool) {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case TierPerfect:
		return TierPerfect, true
	case TierGood:
		return TierGood, true
	case TierPartial:
		return TierPartial, true
	case TierStretch:
		return TierStretch, true
	default:
		return "", false
	}
}
