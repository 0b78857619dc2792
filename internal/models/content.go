package models

// RecyclingTip is static advice shown on the dashboard
type RecyclingTip struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"` // e.g. "general", "plastic", "paper"
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// EducationalResource links to longer-form material
type EducationalResource struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl"`
	ContentURL   string `json:"contentUrl"`
	ResourceType string `json:"resourceType"` // e.g. "article", "video", "guide"
}
