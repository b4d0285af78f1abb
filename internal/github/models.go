package github

import "time"

// restCommit is the GitHub list-commits response shape.
type restCommit struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string    `json:"name"`
			Date time.Time `json:"date"`
		} `json:"author"`
	} `json:"commit"`
	Author *struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
	} `json:"author"`
}

// restCommitDetail is the per-commit detail response carrying line stats
// and the changed-file list.
type restCommitDetail struct {
	SHA   string `json:"sha"`
	Stats struct {
		Additions int `json:"additions"`
		Deletions int `json:"deletions"`
	} `json:"stats"`
	Files []struct {
		Filename string `json:"filename"`
	} `json:"files"`
}

// restRepository is the GitHub repository response shape.
type restRepository struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}
