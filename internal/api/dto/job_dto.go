package dto

// JobRequest payload for create and update.
type JobRequest struct {
	Type        string `json:"type"`
	CreatedAt   string `json:"created_at"`
	Company     string `json:"company"`
	CompanyURL  string `json:"company_url"`
	Location    string `json:"location"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
