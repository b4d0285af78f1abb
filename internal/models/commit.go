package models

import "time"

// CommitAuthor identifies the GitHub account behind a commit. Commits
// without a linked account carry a nil author and are skipped during
// aggregation.
type CommitAuthor struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// CommitRecord is one commit as returned by the commit source. Additions,
// deletions and the changed-file list come from the per-commit detail
// fetch, which is best-effort: when it fails DetailErr records why and the
// commit contributes no file or language data.
type CommitRecord struct {
	SHA       string        `json:"sha"`
	Message   string        `json:"message"`
	Date      time.Time     `json:"date"`
	Additions int           `json:"additions"`
	Deletions int           `json:"deletions"`
	Files     []string      `json:"files,omitempty"`
	Author    *CommitAuthor `json:"author,omitempty"`
	DetailErr error         `json:"-"`
}

// Repository holds the subset of GitHub repository metadata the analyzer
// needs.
type Repository struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}
