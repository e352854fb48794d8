package project

import "github.com/google/uuid"

// Project is the requirement side of a skill match. Priority and Status are
// carried for presentation only; the scorer never reads them.
type Project struct {
	ID             uuid.UUID
	Title          string
	Description    string
	RequiredSkills []string
	Priority       string
	Status         string
}
