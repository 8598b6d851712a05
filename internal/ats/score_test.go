package ats

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDocument() *types.ResumeDocument {
	return &types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{
			FullName: "Alex Rivera",
			Email:    "alex.rivera@example.com",
			Phone:    "+1 (555) 123-4567",
		},
		Summary: "Led a platform team shipping scalable analytics products for enterprise customers.",
		Experience: []types.Experience{
			{Company: "CloudScale AI", Role: "Senior Developer", Description: "Shipped dashboards\nMentored engineers"},
		},
		Education: []types.Education{{School: "Tech Institute", Degree: "B.S.", Year: "2018"}},
		Skills: types.Skills{
			Technical: []string{"Go", "React", "PostgreSQL"},
			Soft:      []string{"Leadership"},
			Tools:     []string{"Docker"},
		},
		Projects: []types.Project{{Name: "Resume Scanner"}},
		Links: types.Links{
			GitHub:   "github.com/alexrivera",
			LinkedIn: "linkedin.com/in/alexrivera",
		},
	}
}

func improvementTexts(result types.ScoreResult) []string {
	texts := make([]string, 0, len(result.Improvements))
	for _, imp := range result.Improvements {
		texts = append(texts, imp.Text)
	}
	return texts
}

func TestScore_EmptyDocument(t *testing.T) {
	result := Score(&types.ResumeDocument{})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, []string{
		"Add at least one work experience entry (+15 points)",
		"Add your full name (+10 points)",
		"Add your email address (+10 points)",
		"Add a professional summary > 50 chars (+10 points)",
		"Include action verbs in summary (+10 points)",
		"Add your education details (+10 points)",
		"Add at least 5 skills (+10 points)",
		"Add at least one project (+10 points)",
		"Add your phone number (+5 points)",
		"Add your LinkedIn profile (+5 points)",
		"Add your GitHub profile (+5 points)",
	}, improvementTexts(result))
}

func TestScore_NilDocument(t *testing.T) {
	result := Score(nil)

	assert.Equal(t, 0, result.Score)
	assert.Len(t, result.Improvements, len(rules))
}

func TestScore_FullDocument(t *testing.T) {
	result := Score(fullDocument())

	assert.Equal(t, 100, result.Score)
	require.NotNil(t, result.Improvements)
	assert.Empty(t, result.Improvements)
}

func TestScore_ImprovementKindsAndPoints(t *testing.T) {
	result := Score(&types.ResumeDocument{})

	kinds := make([]types.ImprovementKind, 0, len(result.Improvements))
	points := make([]int, 0, len(result.Improvements))
	for _, imp := range result.Improvements {
		kinds = append(kinds, imp.Kind)
		points = append(points, imp.Points)
	}

	assert.Equal(t, []types.ImprovementKind{
		types.KindExperience,
		types.KindPersonalInfo, types.KindPersonalInfo,
		types.KindSummary, types.KindSummary,
		types.KindEducation, types.KindSkills, types.KindProjects,
		types.KindPersonalInfo, types.KindLinks, types.KindLinks,
	}, kinds)
	assert.Equal(t, []int{15, 10, 10, 10, 10, 10, 10, 10, 5, 5, 5}, points)
}

func TestScore_ExperienceFailureVariants(t *testing.T) {
	tests := []struct {
		name       string
		experience []types.Experience
		outcome    Outcome
		text       string
	}{
		{
			name:       "no entries",
			experience: nil,
			outcome:    FailEmptyList,
			text:       "Add at least one work experience entry (+15 points)",
		},
		{
			name:       "entries without bullets",
			experience: []types.Experience{{Company: "Acme", Description: "Wrote services in Go."}},
			outcome:    FailNoBulletStructure,
			text:       "Use bullet points in experience descriptions (+15 points)",
		},
		{
			name:       "empty description",
			experience: []types.Experience{{Company: "Acme"}},
			outcome:    FailNoBulletStructure,
			text:       "Use bullet points in experience descriptions (+15 points)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := fullDocument()
			doc.Experience = tt.experience

			result := Score(doc)
			assert.Equal(t, MaxScore-15, result.Score)
			require.Len(t, result.Improvements, 1)
			assert.Equal(t, types.KindExperience, result.Improvements[0].Kind)
			assert.Equal(t, 15, result.Improvements[0].Points)
			assert.Equal(t, tt.text, result.Improvements[0].Text)

			evaluated := Evaluate(doc)
			assert.Equal(t, tt.outcome, evaluated[4].Outcome)
		})
	}
}

func TestScore_BulletMarkers(t *testing.T) {
	tests := []struct {
		name        string
		description string
		passes      bool
	}{
		{name: "newline", description: "Shipped APIs\nReduced latency", passes: true},
		{name: "hyphen", description: "- Shipped APIs", passes: true},
		{name: "hyphen inside word", description: "Built real-time dashboards", passes: true},
		{name: "bullet glyph", description: "• Shipped APIs", passes: true},
		{name: "plain sentence", description: "Shipped APIs and reduced latency", passes: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &types.ResumeDocument{
				Experience: []types.Experience{
					{Company: "First", Description: "No structure here"},
					{Company: "Second", Description: tt.description},
				},
			}
			assert.Equal(t, tt.passes, Evaluate(doc)[4].Outcome.Passed())
		})
	}
}

func TestScore_SummaryLengthBoundary(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		passes  bool
	}{
		{name: "exactly 50", summary: strings.Repeat("a", 50), passes: false},
		{name: "51", summary: strings.Repeat("a", 51), passes: true},
		{name: "50 padded with whitespace", summary: "   " + strings.Repeat("a", 50) + "\n\t ", passes: false},
		{name: "51 multibyte characters", summary: strings.Repeat("é", 51), passes: true},
		{name: "50 multibyte characters", summary: strings.Repeat("é", 50), passes: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &types.ResumeDocument{Summary: tt.summary}
			assert.Equal(t, tt.passes, Evaluate(doc)[2].Outcome.Passed())
		})
	}
}

func TestScore_ActionVerbs(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		passes  bool
	}{
		{name: "uppercase", summary: "LED the team", passes: true},
		{name: "mixed case", summary: "Designed APIs", passes: true},
		{name: "substring of longer word", summary: "Rebuilt the billing stack", passes: true},
		{name: "each verb", summary: "automated", passes: true},
		{name: "no verbs", summary: "Engineer with ten years of experience", passes: false},
		{name: "empty", summary: "", passes: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &types.ResumeDocument{Summary: tt.summary}
			assert.Equal(t, tt.passes, Evaluate(doc)[3].Outcome.Passed())
		})
	}

	for _, verb := range actionVerbs {
		doc := &types.ResumeDocument{Summary: "I " + strings.ToUpper(verb) + " things"}
		assert.True(t, Evaluate(doc)[3].Outcome.Passed(), "verb %q should satisfy the rule", verb)
	}
}

func TestScore_SkillsBoundary(t *testing.T) {
	four := types.Skills{Technical: []string{"Go", "Rust"}, Soft: []string{"Writing"}, Tools: []string{"Git"}}
	five := types.Skills{Technical: []string{"Go", "Rust"}, Soft: []string{"Writing"}, Tools: []string{"Git", "Make"}}

	assert.False(t, Evaluate(&types.ResumeDocument{Skills: four})[6].Outcome.Passed())
	assert.True(t, Evaluate(&types.ResumeDocument{Skills: five})[6].Outcome.Passed())
}

func TestScore_WhitespaceOnlyFieldsFail(t *testing.T) {
	doc := fullDocument()
	doc.PersonalInfo.FullName = "   "
	doc.PersonalInfo.Email = "\t"
	doc.PersonalInfo.Phone = "\n"
	doc.Links.GitHub = " "
	doc.Links.LinkedIn = "  "

	result := Score(doc)
	assert.Equal(t, 100-10-10-5-5-5, result.Score)
	assert.Equal(t, []string{
		"Add your full name (+10 points)",
		"Add your email address (+10 points)",
		"Add your phone number (+5 points)",
		"Add your LinkedIn profile (+5 points)",
		"Add your GitHub profile (+5 points)",
	}, improvementTexts(result))
}

func TestScore_TrimmedWhitespaceSet(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		passes bool
	}{
		{name: "byte order mark only", value: "\uFEFF", passes: false},
		{name: "no-break space only", value: "\u00A0\u00A0", passes: false},
		{name: "line separator only", value: "\u2028 \u2029", passes: false},
		{name: "ideographic space only", value: "\u3000", passes: false},
		{name: "next line only", value: "\u0085", passes: true},
		{name: "name padded with byte order mark", value: "\uFEFFAda\uFEFF", passes: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &types.ResumeDocument{PersonalInfo: types.PersonalInfo{FullName: tt.value}}
			assert.Equal(t, tt.passes, Evaluate(doc)[0].Outcome.Passed())
		})
	}
}

func TestScore_SummaryLengthIgnoresByteOrderMarks(t *testing.T) {
	summary := "\uFEFF" + strings.Repeat("a", 50) + "\uFEFF"
	assert.False(t, Evaluate(&types.ResumeDocument{Summary: summary})[2].Outcome.Passed())
}

func TestScore_Idempotent(t *testing.T) {
	doc := fullDocument()
	doc.Links.GitHub = ""
	doc.Education = nil

	first := Score(doc)
	second := Score(doc)
	assert.Equal(t, first, second)
}

func TestScore_DoesNotMutateDocument(t *testing.T) {
	doc := fullDocument()
	doc.Summary = "  padded summary  "
	before := *doc

	Score(doc)
	assert.Equal(t, before, *doc)
}

func TestScore_Monotonic(t *testing.T) {
	steps := []struct {
		ruleID string
		apply  func(d *types.ResumeDocument)
	}{
		{"phone", func(d *types.ResumeDocument) { d.PersonalInfo.Phone = "555-0100" }},
		{"education", func(d *types.ResumeDocument) { d.Education = []types.Education{{School: "MIT"}} }},
		{"full_name", func(d *types.ResumeDocument) { d.PersonalInfo.FullName = "Alex Rivera" }},
		{"github", func(d *types.ResumeDocument) { d.Links.GitHub = "github.com/alex" }},
		{"summary_action_verbs", func(d *types.ResumeDocument) { d.Summary = "Led things" }},
		{"summary_length", func(d *types.ResumeDocument) { d.Summary += strings.Repeat(" and more", 6) }},
		{"email", func(d *types.ResumeDocument) { d.PersonalInfo.Email = "alex@example.com" }},
		{"project", func(d *types.ResumeDocument) { d.Projects = []types.Project{{Name: "Scanner"}} }},
		{"skills_breadth", func(d *types.ResumeDocument) {
			d.Skills.Technical = []string{"Go", "SQL", "Rust", "C", "Lua"}
		}},
		{"linkedin", func(d *types.ResumeDocument) { d.Links.LinkedIn = "linkedin.com/in/alex" }},
	}

	doc := &types.ResumeDocument{
		Experience: []types.Experience{{Company: "Acme", Description: "Plain text"}},
	}
	previous := Score(doc)

	for _, step := range steps {
		step.apply(doc)
		current := Score(doc)

		info := ruleByID(t, step.ruleID)
		assert.Equal(t, previous.Score+info.Points, current.Score, "step %s", step.ruleID)
		assert.Len(t, current.Improvements, len(previous.Improvements)-1, "step %s", step.ruleID)
		for _, result := range Evaluate(doc) {
			if result.RuleID == step.ruleID {
				assert.True(t, result.Outcome.Passed(), "step %s", step.ruleID)
			}
		}
		previous = current
	}

	// Only the bullet structure rule is still failing.
	require.Len(t, previous.Improvements, 1)
	assert.Equal(t, "Use bullet points in experience descriptions (+15 points)", previous.Improvements[0].Text)
	assert.Equal(t, MaxScore-15, previous.Score)
}

func TestScore_RandomDocumentsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		doc := randomDocument(rng)
		result := Score(doc)
		evaluated := Evaluate(doc)

		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, MaxScore)

		passed := 0
		sum := 0
		for _, r := range evaluated {
			if r.Outcome.Passed() {
				passed++
				sum += r.Points
				assert.Empty(t, r.Text)
			} else {
				assert.NotEmpty(t, r.Text)
			}
		}
		assert.Equal(t, min(sum, MaxScore), result.Score)
		assert.Equal(t, len(rules), passed+len(result.Improvements))

		assert.True(t, sort.SliceIsSorted(result.Improvements, func(a, b int) bool {
			return result.Improvements[a].Points > result.Improvements[b].Points
		}))

		seen := make(map[string]bool)
		for _, imp := range result.Improvements {
			assert.False(t, seen[imp.Text], "duplicate improvement %q", imp.Text)
			seen[imp.Text] = true
		}

		assert.Equal(t, result, Score(doc))
	}
}

func TestScore_TiesKeepRuleOrder(t *testing.T) {
	rank := make(map[string]int)
	for i, r := range Evaluate(&types.ResumeDocument{}) {
		rank[r.Text] = i
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		result := Score(randomDocument(rng))
		for j := 1; j < len(result.Improvements); j++ {
			prev, cur := result.Improvements[j-1], result.Improvements[j]
			if prev.Points == cur.Points {
				assert.Less(t, rank[prev.Text], rank[cur.Text])
			}
		}
	}
}

func TestTop(t *testing.T) {
	result := Score(&types.ResumeDocument{})

	assert.Equal(t, result.Improvements[:3], Top(result, 3))
	assert.Equal(t, result.Improvements, Top(result, 0))
	assert.Equal(t, result.Improvements, Top(result, -1))
	assert.Equal(t, result.Improvements, Top(result, 50))
	assert.Empty(t, Top(Score(fullDocument()), 3))
}

func TestBand(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{0, "Needs Work"},
		{40, "Needs Work"},
		{41, "Getting There"},
		{70, "Getting There"},
		{71, "Strong Resume"},
		{100, "Strong Resume"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Band(tt.score), "score %d", tt.score)
	}
}

func TestRules(t *testing.T) {
	infos := Rules()
	require.Len(t, infos, 11)

	total := 0
	ids := make(map[string]bool)
	for _, info := range infos {
		total += info.Points
		assert.Contains(t, []int{5, 10, 15}, info.Points)
		assert.NotEmpty(t, info.Description)
		assert.False(t, ids[info.ID], "duplicate rule id %s", info.ID)
		ids[info.ID] = true
	}
	assert.Equal(t, 100, total)
	assert.Equal(t, "full_name", infos[0].ID)
	assert.Equal(t, "github", infos[10].ID)
}

func TestRules_EveryFailureHasMessage(t *testing.T) {
	for _, r := range rules {
		assert.NotEmpty(t, r.messages, "rule %s", r.id)
		for outcome, msg := range r.messages {
			assert.False(t, outcome.Passed(), "rule %s", r.id)
			assert.NotEmpty(t, msg, "rule %s", r.id)
		}
	}
}

func TestOutcome_MarshalText(t *testing.T) {
	text, err := FailNoBulletStructure.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "fail_no_bullet_structure", string(text))
	assert.Equal(t, "unknown", Outcome(99).String())
}

func ruleByID(t *testing.T, id string) RuleInfo {
	t.Helper()
	for _, info := range Rules() {
		if info.ID == id {
			return info
		}
	}
	t.Fatalf("rule %s not found", id)
	return RuleInfo{}
}

func randomDocument(rng *rand.Rand) *types.ResumeDocument {
	pick := func(options ...string) string { return options[rng.Intn(len(options))] }
	strs := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = pick("Go", "SQL", "Docker")
		}
		return out
	}

	doc := &types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{
			FullName: pick("", " ", "Alex"),
			Email:    pick("", "a@b.c"),
			Phone:    pick("", "\t", "555"),
		},
		Summary: pick("", "LED the team", strings.Repeat("x", 51), "Managed "+strings.Repeat("y", 60)),
		Skills: types.Skills{
			Technical: strs(rng.Intn(4)),
			Soft:      strs(rng.Intn(3)),
			Tools:     strs(rng.Intn(3)),
		},
		Links: types.Links{
			GitHub:   pick("", "github.com/a"),
			LinkedIn: pick("", "linkedin.com/in/a"),
		},
	}
	for i := rng.Intn(3); i > 0; i-- {
		doc.Experience = append(doc.Experience, types.Experience{Description: pick("", "plain", "a\nb", "• x")})
	}
	for i := rng.Intn(2); i > 0; i-- {
		doc.Education = append(doc.Education, types.Education{School: "U"})
	}
	for i := rng.Intn(2); i > 0; i-- {
		doc.Projects = append(doc.Projects, types.Project{Name: "P"})
	}
	return doc
}
