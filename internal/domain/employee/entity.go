package employee

import "github.com/google/uuid"

// Employee is the candidate side of a skill match. Skill names are free
// text, case preserved; matching is case-insensitive downstream.
type Employee struct {
	ID              uuid.UUID
	Name            string
	Skills          []string
	ExperienceLevel ExperienceLevel
	Department      string
}
