package types

// ImprovementKind names the resume section an improvement refers to
type ImprovementKind string

// Improvement kinds, one per resume section
const (
	KindPersonalInfo ImprovementKind = "personalInfo"
	KindSummary      ImprovementKind = "summary"
	KindExperience   ImprovementKind = "experience"
	KindEducation    ImprovementKind = "education"
	KindSkills       ImprovementKind = "skills"
	KindProjects     ImprovementKind = "projects"
	KindLinks        ImprovementKind = "links"
)

// Improvement is a suggestion emitted for a failed ATS rule
type Improvement struct {
	Kind   ImprovementKind `json:"kind"`
	Text   string          `json:"text"`
	Points int             `json:"points"`
}

// ScoreResult is the output of ATS scoring.
// Improvements is ordered by points descending and is authoritative for display.
type ScoreResult struct {
	Score        int           `json:"score"`
	Improvements []Improvement `json:"improvements"`
}
