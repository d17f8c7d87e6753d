package model

import "time"

// GeneralEducationRequirement breaks down the general-education credit
// requirement. Only Total is used for progress reporting; the sub-areas
// need separate verification against the department's own rules.
type GeneralEducationRequirement struct {
	Total        int `json:"total"`
	Basic        int `json:"basic"`
	General      int `json:"general"`
	Extended     int `json:"extended"`
	BasicScience int `json:"basic_science"`
}

// MajorCreditRequirement breaks down the major credit requirement.
type MajorCreditRequirement struct {
	Total    int `json:"total"`
	Required int `json:"required"`
	Elective int `json:"elective"`
}

// GraduationRequirement is one row of the cohort-and-major-keyed
// requirement table. Read-only after load; never mutated at runtime.
type GraduationRequirement struct {
	ID               int                         `json:"id,omitempty"`
	Cohort           int                         `json:"cohort"`
	Major            string                      `json:"major"`
	TotalCredits     int                         `json:"total_credits"`
	GeneralEducation GeneralEducationRequirement `json:"general_education"`
	MajorCredits     MajorCreditRequirement      `json:"major_credits"`
	CreatedAt        time.Time                   `json:"created_at,omitempty"`
	UpdatedAt        time.Time                   `json:"updated_at,omitempty"`
}
