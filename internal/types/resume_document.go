// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"
)

// ResumeDocument is the editable resume as produced by the builder.
// Every field is optional; zero values mean absent.
type ResumeDocument struct {
	Template     string       `json:"template,omitempty"`
	ThemeColor   string       `json:"themeColor,omitempty"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Education    []Education  `json:"education"`
	Experience   []Experience `json:"experience"`
	Projects     []Project    `json:"projects"`
	Skills       Skills       `json:"skills"`
	Links        Links        `json:"links"`
}

// PersonalInfo holds the contact header of a resume
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Education represents a single education entry
type Education struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Year   string `json:"year"`
}

// Experience represents a single work experience entry.
// Description is free text; bullets are written inline.
type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Project represents a single portfolio project
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	LiveURL     string   `json:"liveUrl"`
	GithubURL   string   `json:"githubUrl"`
}

// Skills groups skills into technical, soft and tool categories
type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Tools     []string `json:"tools"`
}

// Count returns the total number of skills across all groups
func (s Skills) Count() int {
	return len(s.Technical) + len(s.Soft) + len(s.Tools)
}

// UnmarshalJSON accepts both the grouped object form and the legacy
// comma-separated string form, which is migrated into Technical.
func (s *Skills) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var legacy string
	if err := json.Unmarshal(data, &legacy); err == nil {
		*s = Skills{Technical: SplitSkillList(legacy), Soft: []string{}, Tools: []string{}}
		return nil
	}

	type plain Skills
	var grouped plain
	if err := json.Unmarshal(data, &grouped); err != nil {
		return err
	}
	*s = Skills(grouped)
	return nil
}

// SplitSkillList splits a comma-separated skill list, dropping blank entries.
func SplitSkillList(list string) []string {
	result := []string{}
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

// Links holds profile links
type Links struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}
