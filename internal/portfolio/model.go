package portfolio

import "time"

// Project is one portfolio entry. Case-study fields (Problem, Solution,
// Results, Process) are empty for projects without a written case study.
type Project struct {
	ID               string     `json:"id"`
	Slug             string     `json:"slug"`
	Title            string     `json:"title"`
	ShortDescription string     `json:"short_description"`
	ClientName       string     `json:"client_name,omitempty"`
	LiveURL          string     `json:"live_url,omitempty"`
	RepoURL          string     `json:"repo_url,omitempty"`
	Category         string     `json:"category"`
	IsFeatured       bool       `json:"is_featured"`
	LaunchDate       *time.Time `json:"launch_date,omitempty"`
	Problem          string     `json:"problem,omitempty"`
	Solution         string     `json:"solution,omitempty"`
	Results          string     `json:"results,omitempty"`
	Process          []string   `json:"process,omitempty"`
	Highlights       []string   `json:"highlights,omitempty"`
	Technologies     []string   `json:"technologies,omitempty"`
	ThumbnailImage   string     `json:"thumbnail_image,omitempty"`
	GalleryImages    []string   `json:"gallery_images,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}
