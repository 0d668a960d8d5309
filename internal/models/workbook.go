package models

// Workbook is a downloadable practice workbook listed in the catalog.
type Workbook struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	File        string   `json:"file"`
	Tags        []string `json:"tags"`
}

// DefaultWorkbooks returns the built-in workbook catalog.
func DefaultWorkbooks() []Workbook {
	return []Workbook{
		{
			ID:          "wb1",
			Title:       "Mathematics Workbook - Chapter 1",
			Description: "Basic algebra practice problems and worked examples.",
			File:        "https://example.com/sample-math-workbook.pdf",
			Tags:        []string{"Math", "Algebra"},
		},
		{
			ID:          "wb2",
			Title:       "Physics Practice Exercises",
			Description: "Mechanics exercises with solutions.",
			File:        "https://example.com/sample-physics-workbook.pdf",
			Tags:        []string{"Physics", "Mechanics"},
		},
		{
			ID:          "wb3",
			Title:       "English Grammar Exercises",
			Description: "Practice for tenses and sentence construction.",
			File:        "https://example.com/sample-english-workbook.pdf",
			Tags:        []string{"English", "Grammar"},
		},
	}
}
