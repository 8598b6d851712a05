package resume

import "github.com/jonathan/resume-builder/internal/types"

// Normalize replaces absent sequences with empty ones so the document
// round-trips with every section present. Text is never altered.
// The document is modified in place and returned.
func Normalize(doc *types.ResumeDocument) *types.ResumeDocument {
	if doc == nil {
		return Initial()
	}

	if doc.Education == nil {
		doc.Education = []types.Education{}
	}
	if doc.Experience == nil {
		doc.Experience = []types.Experience{}
	}
	if doc.Projects == nil {
		doc.Projects = []types.Project{}
	}
	for i := range doc.Projects {
		if doc.Projects[i].TechStack == nil {
			doc.Projects[i].TechStack = []string{}
		}
	}
	doc.Skills.Technical = orEmpty(doc.Skills.Technical)
	doc.Skills.Soft = orEmpty(doc.Skills.Soft)
	doc.Skills.Tools = orEmpty(doc.Skills.Tools)

	return doc
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// IsIncomplete reports whether a document lacks the minimum content worth
// exporting: a name, and at least one experience or project entry.
func IsIncomplete(doc *types.ResumeDocument) bool {
	if doc == nil {
		return true
	}
	return doc.PersonalInfo.FullName == "" || (len(doc.Experience) == 0 && len(doc.Projects) == 0)
}
