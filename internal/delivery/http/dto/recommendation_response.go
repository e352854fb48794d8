package dto

import "github.com/google/uuid"

type ProjectRecommendationItem struct {
	ProjectID           uuid.UUID `json:"project_id"`
	Title               string    `json:"title"`
	CompatibilityScore  int       `json:"compatibility_score"`
	MatchingSkills      []string  `json:"matching_skills"`
	MissingSkills       []string  `json:"missing_skills"`
	Reasoning           string    `json:"reasoning"`
	RecommendationLevel string    `json:"recommendation_level"`
}

type EmployeeRecommendationItem struct {
	EmployeeID          uuid.UUID `json:"employee_id"`
	Name                string    `json:"name"`
	CompatibilityScore  int       `json:"compatibility_score"`
	MatchingSkills      []string  `json:"matching_skills"`
	AdditionalSkills    []string  `json:"additional_skills"`
	Reasoning           string    `json:"reasoning"`
	RecommendationLevel string    `json:"recommendation_level"`
}

type ProjectRecommendationsResponse struct {
	Source string                      `json:"source"`
	Items  []ProjectRecommendationItem `json:"items"`
}

type EmployeeRecommendationsResponse struct {
	Source string                       `json:"source"`
	Items  []EmployeeRecommendationItem `json:"items"`
}
