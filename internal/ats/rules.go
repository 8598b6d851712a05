// Package ats provides deterministic ATS readiness scoring of resume documents.
package ats

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
)

// MaxScore is the upper bound of an ATS score
const MaxScore = 100

const (
	minSummaryChars = 50
	minSkillCount   = 5
)

// actionVerbs are matched as case-insensitive substrings of the summary.
var actionVerbs = []string{
	"built", "led", "designed", "implemented", "improved",
	"created", "optimized", "automated", "developed", "managed",
}

// bulletMarkers indicate bullet structure in an experience description.
var bulletMarkers = []string{"\n", "-", "•"}

// Outcome is the result of evaluating a single rule
type Outcome int

const (
	// Pass means the rule's points are awarded
	Pass Outcome = iota
	// FailMissing means the checked field is blank or below threshold
	FailMissing
	// FailEmptyList means there are no entries to inspect
	FailEmptyList
	// FailNoBulletStructure means entries exist but none uses bullets
	FailNoBulletStructure
)

// String returns a stable name for the outcome
func (o Outcome) String() string {
	switch o {
	case Pass:
		return "pass"
	case FailMissing:
		return "fail_missing"
	case FailEmptyList:
		return "fail_empty_list"
	case FailNoBulletStructure:
		return "fail_no_bullet_structure"
	default:
		return "unknown"
	}
}

// MarshalText encodes the outcome by name
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Passed reports whether the outcome awards points
func (o Outcome) Passed() bool {
	return o == Pass
}

type rule struct {
	id          string
	kind        types.ImprovementKind
	points      int
	description string
	check       func(*types.ResumeDocument) Outcome
	// messages maps each failure outcome the check can produce to its suggestion.
	messages map[Outcome]string
}

// rules is evaluated in order; ties in the improvement list keep this order.
var rules = []rule{
	{
		id: "full_name", kind: types.KindPersonalInfo, points: 10,
		description: "Full name present",
		check:       func(d *types.ResumeDocument) Outcome { return present(d.PersonalInfo.FullName) },
		messages:    map[Outcome]string{FailMissing: "Add your full name"},
	},
	{
		id: "email", kind: types.KindPersonalInfo, points: 10,
		description: "Email present",
		check:       func(d *types.ResumeDocument) Outcome { return present(d.PersonalInfo.Email) },
		messages:    map[Outcome]string{FailMissing: "Add your email address"},
	},
	{
		id: "summary_length", kind: types.KindSummary, points: 10,
		description: "Summary longer than 50 characters",
		check:       checkSummaryLength,
		messages:    map[Outcome]string{FailMissing: "Add a professional summary > 50 chars"},
	},
	{
		id: "summary_action_verbs", kind: types.KindSummary, points: 10,
		description: "Summary uses action verbs",
		check:       checkActionVerbs,
		messages:    map[Outcome]string{FailMissing: "Include action verbs in summary"},
	},
	{
		id: "experience_bullets", kind: types.KindExperience, points: 15,
		description: "Experience described with bullets",
		check:       checkExperienceBullets,
		messages: map[Outcome]string{
			FailEmptyList:         "Add at least one work experience entry",
			FailNoBulletStructure: "Use bullet points in experience descriptions",
		},
	},
	{
		id: "education", kind: types.KindEducation, points: 10,
		description: "Education present",
		check:       func(d *types.ResumeDocument) Outcome { return nonEmpty(len(d.Education)) },
		messages:    map[Outcome]string{FailMissing: "Add your education details"},
	},
	{
		id: "skills_breadth", kind: types.KindSkills, points: 10,
		description: "At least 5 skills",
		check:       checkSkillsBreadth,
		messages:    map[Outcome]string{FailMissing: "Add at least 5 skills"},
	},
	{
		id: "project", kind: types.KindProjects, points: 10,
		description: "Project present",
		check:       func(d *types.ResumeDocument) Outcome { return nonEmpty(len(d.Projects)) },
		messages:    map[Outcome]string{FailMissing: "Add at least one project"},
	},
	{
		id: "phone", kind: types.KindPersonalInfo, points: 5,
		description: "Phone present",
		check:       func(d *types.ResumeDocument) Outcome { return present(d.PersonalInfo.Phone) },
		messages:    map[Outcome]string{FailMissing: "Add your phone number"},
	},
	{
		id: "linkedin", kind: types.KindLinks, points: 5,
		description: "LinkedIn present",
		check:       func(d *types.ResumeDocument) Outcome { return present(d.Links.LinkedIn) },
		messages:    map[Outcome]string{FailMissing: "Add your LinkedIn profile"},
	},
	{
		id: "github", kind: types.KindLinks, points: 5,
		description: "GitHub present",
		check:       func(d *types.ResumeDocument) Outcome { return present(d.Links.GitHub) },
		messages:    map[Outcome]string{FailMissing: "Add your GitHub profile"},
	},
}

// isTrimmable reports whether r is whitespace for trimming purposes: the
// Unicode White_Space set plus U+FEFF, without U+0085.
func isTrimmable(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

func trim(value string) string {
	return strings.TrimFunc(value, isTrimmable)
}

func present(value string) Outcome {
	if trim(value) != "" {
		return Pass
	}
	return FailMissing
}

func nonEmpty(n int) Outcome {
	if n > 0 {
		return Pass
	}
	return FailMissing
}

func checkSummaryLength(d *types.ResumeDocument) Outcome {
	if utf8.RuneCountInString(trim(d.Summary)) > minSummaryChars {
		return Pass
	}
	return FailMissing
}

// checkActionVerbs uses substring matching, so "rebuilt" counts as "built".
func checkActionVerbs(d *types.ResumeDocument) Outcome {
	summary := strings.ToLower(d.Summary)
	for _, verb := range actionVerbs {
		if strings.Contains(summary, verb) {
			return Pass
		}
	}
	return FailMissing
}

func checkExperienceBullets(d *types.ResumeDocument) Outcome {
	if len(d.Experience) == 0 {
		return FailEmptyList
	}
	for _, exp := range d.Experience {
		for _, marker := range bulletMarkers {
			if strings.Contains(exp.Description, marker) {
				return Pass
			}
		}
	}
	return FailNoBulletStructure
}

func checkSkillsBreadth(d *types.ResumeDocument) Outcome {
	if d.Skills.Count() >= minSkillCount {
		return Pass
	}
	return FailMissing
}

// RuleInfo describes a rule of the scoring table
type RuleInfo struct {
	ID          string                `json:"id"`
	Kind        types.ImprovementKind `json:"kind"`
	Points      int                   `json:"points"`
	Description string                `json:"description"`
}

// Rules returns the scoring table in evaluation order.
func Rules() []RuleInfo {
	infos := make([]RuleInfo, 0, len(rules))
	for _, r := range rules {
		infos = append(infos, RuleInfo{
			ID:          r.id,
			Kind:        r.kind,
			Points:      r.points,
			Description: r.description,
		})
	}
	return infos
}
