// internal/search/models.go
package search

// Result is the decoded provider response. The populated fields depend on the
// engine: google_hotels fills Properties, plain google fills AnswerBox and
// KnowledgeGraph.
type Result struct {
	Error          string          `json:"error,omitempty"`
	Properties     []Property      `json:"properties,omitempty"`
	AnswerBox      *AnswerBox      `json:"answer_box,omitempty"`
	KnowledgeGraph *KnowledgeGraph `json:"knowledge_graph,omitempty"`
}

// Property is one hotel candidate from a google_hotels result.
type Property struct {
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	Link          string        `json:"link,omitempty"`
	OverallRating float64       `json:"overall_rating,omitempty"`
	RatePerNight  *RatePerNight `json:"rate_per_night,omitempty"`
	Images        []Image       `json:"images,omitempty"`
}

// RatePerNight carries the provider's lowest nightly rate, both as the raw
// display string and, when the provider extracted it, as a number.
type RatePerNight struct {
	Lowest          string  `json:"lowest,omitempty"`
	ExtractedLowest float64 `json:"extracted_lowest,omitempty"`
}

type Image struct {
	Thumbnail     string `json:"thumbnail,omitempty"`
	OriginalImage string `json:"original_image,omitempty"`
}

// AnswerBox is the direct-answer block of a general google result.
type AnswerBox struct {
	Price   string `json:"price,omitempty"`
	Answer  string `json:"answer,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

type KnowledgeGraph struct {
	Title            string `json:"title,omitempty"`
	TicketsAdmission string `json:"tickets_admission,omitempty"`
}
