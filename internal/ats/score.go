package ats

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultTopImprovements is the number of improvements shown in compact views
const DefaultTopImprovements = 3

// RuleResult is the outcome of one rule for a given document
type RuleResult struct {
	RuleID  string                `json:"rule_id"`
	Kind    types.ImprovementKind `json:"kind"`
	Points  int                   `json:"points"`
	Outcome Outcome               `json:"outcome"`
	// Text is the improvement suggestion; empty when the rule passed.
	Text string `json:"text,omitempty"`
}

// Evaluate runs every rule against the document in table order.
// A nil document is scored as an empty one.
func Evaluate(doc *types.ResumeDocument) []RuleResult {
	if doc == nil {
		doc = &types.ResumeDocument{}
	}

	results := make([]RuleResult, 0, len(rules))
	for _, r := range rules {
		outcome := r.check(doc)
		result := RuleResult{
			RuleID:  r.id,
			Kind:    r.kind,
			Points:  r.points,
			Outcome: outcome,
		}
		if !outcome.Passed() {
			result.Text = fmt.Sprintf("%s (+%d points)", r.messages[outcome], r.points)
		}
		results = append(results, result)
	}
	return results
}

// Score computes the ATS score of a document and the improvements for every
// failed rule, ordered by points descending with ties in rule order.
func Score(doc *types.ResumeDocument) types.ScoreResult {
	results := Evaluate(doc)

	total := 0
	improvements := make([]types.Improvement, 0, len(results))
	for _, result := range results {
		if result.Outcome.Passed() {
			total += result.Points
			continue
		}
		improvements = append(improvements, types.Improvement{
			Kind:   result.Kind,
			Text:   result.Text,
			Points: result.Points,
		})
	}

	sort.SliceStable(improvements, func(i, j int) bool {
		return improvements[i].Points > improvements[j].Points
	})

	return types.ScoreResult{
		Score:        min(total, MaxScore),
		Improvements: improvements,
	}
}

// Top returns the first n improvements of a result in their scored order.
// n <= 0 returns all of them.
func Top(result types.ScoreResult, n int) []types.Improvement {
	if n <= 0 || n >= len(result.Improvements) {
		return result.Improvements
	}
	return result.Improvements[:n]
}

// Band labels a score for display
func Band(score int) string {
	switch {
	case score <= 40:
		return "Needs Work"
	case score <= 70:
		return "Getting There"
	default:
		return "Strong Resume"
	}
}
