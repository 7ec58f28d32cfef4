package domain

// Job is a single listing in the job collection.
type Job struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	CreatedAt   string `json:"created_at"`
	Company     string `json:"company"`
	CompanyURL  string `json:"company_url"`
	Location    string `json:"location"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// JobPage is one page of listings plus pagination metadata.
type JobPage struct {
	Items      []Job `json:"items"`
	Total      int   `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	TotalPages int   `json:"totalPages"`
}
