package employee

import "strings"

// ExperienceLevel is a closed enumeration over the open string space the
// platform stores ("junior", "mid", "senior", "lead", anything else).
// Unrecognized labels parse to ExperienceOther instead of failing.
type ExperienceLevel int

const (
	ExperienceOther ExperienceLevel = iota
	ExperienceJunior
	ExperienceMid
	ExperienceSenior
	ExperienceLead
)

func ParseExperienceLevel(s string) ExperienceLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "junior":
		return ExperienceJunior
	case "mid":
		return ExperienceMid
	case "senior":
		return ExperienceSenior
	case "lead":
		return ExperienceLead
	default:
		return ExperienceOther
	}
}

func (l ExperienceLevel) String() string {
	switch l {
	case ExperienceJunior:
		return "junior"
	case ExperienceMid:
		return "mid"
	case ExperienceSenior:
		return "senior"
	case ExperienceLead:
		return "lead"
	default:
		return "other"
	}
}
