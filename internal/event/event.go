// Package event decodes forge webhook payloads and classifies them into a
// closed taxonomy of event types.
package event

import "encoding/json"

// Payload is the decoded webhook event. Sub-objects are optional; presence
// (a non-nil pointer) is what the classifier keys on.
type Payload struct {
	Action      string       `json:"action"`
	Number      *int         `json:"number,omitempty"`
	Issue       *Issue       `json:"issue,omitempty"`
	PullRequest *PullRequest `json:"pull_request,omitempty"`
	Review      *Review      `json:"review,omitempty"`
	Comment     *Comment     `json:"comment,omitempty"`
	Sender      Sender       `json:"sender"`
	Repository  Repository   `json:"repository"`
}

// Issue is the subset of the issue object the relay renders.
type Issue struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	HTMLURL string `json:"html_url"`
}

// PullRequest is the subset of the pull_request object the relay renders.
type PullRequest struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	HTMLURL string `json:"html_url"`
}

// Review is the subset of the review object the relay renders.
type Review struct {
	Body    string `json:"body"`
	HTMLURL string `json:"html_url"`
}

// Comment covers issue comments, review comments, and commit comments; the
// commit/diff fields are only populated for the latter two.
type Comment struct {
	CommitID string `json:"commit_id"`
	Path     string `json:"path"`
	DiffHunk string `json:"diff_hunk"`
	Body     string `json:"body"`
	HTMLURL  string `json:"html_url"`
}

// Sender is the actor who triggered the event.
type Sender struct {
	Login     string `json:"login"`
	HTMLURL   string `json:"html_url"`
	AvatarURL string `json:"avatar_url"`
}

// Repository identifies the repository the event belongs to.
type Repository struct {
	FullName string `json:"full_name"`
}

// Decode parses a raw webhook document. Unknown fields are ignored; missing
// fields decode to zero values and never fail on their own.
func Decode(raw []byte) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
