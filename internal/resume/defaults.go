package resume

import "github.com/jonathan/resume-builder/internal/types"

// Builder defaults for new documents
const (
	DefaultTemplate   = "Classic"
	DefaultThemeColor = "hsl(168, 60%, 40%)"
)

// Initial returns the empty document a new resume starts from
func Initial() *types.ResumeDocument {
	return &types.ResumeDocument{
		Template:   DefaultTemplate,
		ThemeColor: DefaultThemeColor,
		Education:  []types.Education{},
		Experience: []types.Experience{},
		Projects:   []types.Project{},
		Skills: types.Skills{
			Technical: []string{},
			Soft:      []string{},
			Tools:     []string{},
		},
	}
}

// Sample returns a fully populated example document
func Sample() *types.ResumeDocument {
	return &types.ResumeDocument{
		Template:   "Modern",
		ThemeColor: "hsl(220, 60%, 35%)",
		PersonalInfo: types.PersonalInfo{
			FullName: "Alex Rivera",
			Email:    "alex.rivera@example.com",
			Phone:    "+1 (555) 123-4567",
			Location: "San Francisco, CA",
		},
		Summary: "Innovative Software Engineer with 5+ years of experience in building scalable web applications. Passionate about AI integration and user-centric design.",
		Education: []types.Education{
			{School: "Tech Institute of California", Degree: "B.S. Computer Science", Year: "2018"},
		},
		Experience: []types.Experience{
			{
				Company:     "CloudScale AI",
				Role:        "Senior Developer",
				Duration:    "2021 - Present",
				Description: "Led the development of a real-time analytics dashboard using React and Node.js.",
			},
			{
				Company:     "WebFlow Systems",
				Role:        "Frontend Engineer",
				Duration:    "2018 - 2021",
				Description: "Optimized frontend performance by 40% using advanced caching techniques.",
			},
		},
		Projects: []types.Project{
			{
				Name:        "AI Resume Scanner",
				Description: "Developed an NLP-based tool to match resumes with job descriptions.",
				TechStack:   []string{"Python", "NLP", "React", "FastAPI"},
				LiveURL:     "https://scanner.ai",
				GithubURL:   "https://github.com/alex/scanner",
			},
		},
		Skills: types.Skills{
			Technical: []string{"React", "Node.js", "Python", "PostgreSQL", "TypeScript"},
			Soft:      []string{"Team Leadership", "Problem Solving"},
			Tools:     []string{"AWS", "Docker", "Git"},
		},
		Links: types.Links{
			GitHub:   "github.com/alexrivera",
			LinkedIn: "linkedin.com/in/alexrivera",
		},
	}
}
