package models

// Resource types. Articles come from the generative model, youtube entries
// from video enrichment.
const (
	ResourceTypeArticle = "article"
	ResourceTypeYouTube = "youtube"
)

// Resource is one learning unit inside a plan.
type Resource struct {
	Title               string `json:"title"`
	Summary             string `json:"summary"`
	Link                string `json:"link"`
	Duration            string `json:"duration"`
	Topic               string `json:"topic"`
	RecommendedNextStep string `json:"recommended_next_step"`
	Type                string `json:"type"`
	// Completed stays absent in the persisted document until the first
	// progress update touches the resource.
	Completed bool `json:"completed,omitempty"`
}

// LearningPlan is the structured output of one generation request.
type LearningPlan struct {
	CareerSummary         string     `json:"career_summary"`
	FutureScope           string     `json:"future_scope"`
	JobSuccessProbability string     `json:"job_success_probability"`
	Resources             []Resource `json:"resources"`
}

// ModelRejection is the error object the model returns when it judges the
// skills or goal to be gibberish.
type ModelRejection struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// AllCompleted reports whether every resource has been completed. An empty
// list is vacuously complete; quota accounting treats that case separately.
func AllCompleted(resources []Resource) bool {
	for _, r := range resources {
		if !r.Completed {
			return false
		}
	}
	return true
}
