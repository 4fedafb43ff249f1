package models

import (
	"strconv"
	"time"
)

// RepositoryResponse is one element of the GET /user/repos body. Only the
// fields the CLI shows are decoded.
type RepositoryResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	HTMLURL         string    `json:"html_url"`
	StargazersCount int       `json:"stargazers_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// Repository is the row printed by `qb github list-repos`.
type Repository struct {
	ID        int64     `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	URL       string    `json:"url" yaml:"url"`
	Stars     int       `json:"stars" yaml:"stars"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// ToRepository maps the API representation to the CLI row.
func (r RepositoryResponse) ToRepository() Repository {
	return Repository{
		ID:        r.ID,
		Name:      r.Name,
		URL:       r.HTMLURL,
		Stars:     r.StargazersCount,
		CreatedAt: r.CreatedAt,
	}
}

// Header returns the column names used by table and CSV output.
func (Repository) Header() []string {
	return []string{"id", "name", "url", "stars", "created_at"}
}

// Row returns the cell values in Header order.
func (r Repository) Row() []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.Name,
		r.URL,
		strconv.Itoa(r.Stars),
		r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
