package domain

// Category identifies one analysis task applied to a judicial ruling.
type Category string

const (
	CategorySubjects    Category = "subjects"
	CategoryRatio       Category = "ratio"
	CategoryLaw         Category = "law"
	CategoryHolding     Category = "holding"
	CategoryConsequence Category = "consequence"
	CategoryQuestion    Category = "question"
	CategoryGeneral     Category = "general"
)

// ParseCategory maps a wire token to a Category. Unknown tokens fall back to
// CategoryGeneral instead of failing.
func ParseCategory(s string) Category {
	switch c := Category(s); c {
	case CategorySubjects, CategoryRatio, CategoryLaw, CategoryHolding,
		CategoryConsequence, CategoryQuestion, CategoryGeneral:
		return c
	}
	return CategoryGeneral
}

// AnalysisResult is the outcome of analyzing one uploaded document.
type AnalysisResult struct {
	SessionID string   `json:"session_id"`
	Category  Category `json:"category"`
	Filename  string   `json:"filename"`
	Answer    string   `json:"answer"`
}

// SessionAnalysisResult is the outcome of a follow-up query against a stored
// session. PriorQueries is the session's history length measured after the
// query is recorded, so it counts the query itself.
type SessionAnalysisResult struct {
	SessionID    string   `json:"session_id"`
	Category     Category `json:"category"`
	Filename     string   `json:"filename"`
	Answer       string   `json:"answer"`
	PriorQueries int      `json:"prior_queries"`
}

// BatchEntry is one document's answer within a batch.
type BatchEntry struct {
	Filename string `json:"filename"`
	Answer   string `json:"answer"`
}

// BatchResult is the outcome of applying one category to several documents.
type BatchResult struct {
	Category Category     `json:"category"`
	Count    int          `json:"count"`
	Results  []BatchEntry `json:"results"`
}
