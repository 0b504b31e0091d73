// Package render turns a classified event into a notification message using
// per-group template rules.
package render

import (
	"fmt"

	"github.com/hookline/hookline/internal/event"
	"github.com/hookline/hookline/models"
)

// Accent colors, 6-hex-digit RGB.
const (
	colorDefault       = "2F3136" // neutral
	colorMuted         = "202225" // closed / deleted / dismissed
	colorEdit          = "373B40" // edited
	colorCommitComment = "EAF0F3"
	colorCommentNew    = "DAD100"
	colorIssueOpen     = "EB6420"
	colorPROpen        = "009801"
	colorReviewNew     = "03B2F8"
	colorReviewComment = "6ED5FF"
)

// maxDescription is Discord's embed description limit.
const maxDescription = 4096

// actionColor returns the base accent color for an action. Group rules may
// override it.
func actionColor(action string) string {
	switch action {
	case "closed", "deleted", "dismissed":
		return colorMuted
	case "edited":
		return colorEdit
	default:
		return colorDefault
	}
}

// Render builds the message for a classified event. It must not be called
// with event.TypeUnknown; such events are dropped by the policy filter before
// rendering. Missing sub-objects render as empty fields rather than panicking.
func Render(t event.Type, p *event.Payload) models.Message {
	msg := models.Message{
		AuthorName:    p.Sender.Login,
		AuthorURL:     p.Sender.HTMLURL,
		AuthorIconURL: p.Sender.AvatarURL,
		Color:         actionColor(p.Action),
	}

	repo := p.Repository.FullName
	issue := issueOf(p)
	pr := prOf(p)
	review := reviewOf(p)
	comment := commentOf(p)

	switch t.Group() {
	case event.GroupCommitComment:
		msg.Title = fmt.Sprintf("[%s] Commit comment %s: %s", repo, p.Action, comment.CommitID)
		msg.URL = comment.HTMLURL
		msg.Description = comment.Body
		msg.Color = colorCommitComment

	case event.GroupIssueComment:
		msg.Title = fmt.Sprintf("[%s] Issue comment %s: #%d %s", repo, p.Action, issue.Number, issue.Title)
		msg.URL = comment.HTMLURL
		if p.Action == "created" || p.Action == "edited" {
			msg.Description = comment.Body
		}
		if p.Action == "created" {
			msg.Color = colorCommentNew
		}

	case event.GroupIssue:
		msg.Title = fmt.Sprintf("[%s] Issue %s: #%d %s", repo, p.Action, issue.Number, issue.Title)
		msg.URL = issue.HTMLURL
		if p.Action == "opened" || p.Action == "edited" {
			msg.Description = issue.Body
		}
		if p.Action == "opened" || p.Action == "reopened" {
			msg.Color = colorIssueOpen
		}

	case event.GroupPullRequest:
		msg.Title = fmt.Sprintf("[%s] Pull request %s: #%d %s", repo, p.Action, pr.Number, pr.Title)
		msg.URL = pr.HTMLURL
		if p.Action == "opened" || p.Action == "edited" {
			msg.Description = pr.Body
		}
		if p.Action == "opened" || p.Action == "reopened" {
			msg.Color = colorPROpen
		}

	case event.GroupPullRequestReview:
		msg.Title = fmt.Sprintf("[%s] Pull request review %s: #%d %s", repo, p.Action, pr.Number, pr.Title)
		msg.URL = review.HTMLURL
		if p.Action == "submitted" || p.Action == "edited" {
			msg.Description = review.Body
		}
		if p.Action == "submitted" {
			msg.Color = colorReviewNew
		}

	case event.GroupPullRequestReviewComment:
		msg.Title = fmt.Sprintf("[%s] Pull request review comment %s: #%d %s", repo, p.Action, pr.Number, pr.Title)
		msg.URL = comment.HTMLURL
		if p.Action == "created" || p.Action == "edited" {
			msg.Description = diffComment(comment)
		}
		if p.Action == "created" {
			msg.Color = colorReviewComment
		}
	}

	msg.Description = truncate(msg.Description, maxDescription)
	return msg
}

// diffComment formats a review comment as a file heading, a fenced diff hunk,
// and the comment body.
func diffComment(c event.Comment) string {
	return fmt.Sprintf("**%s**\n```diff\n%s\n```\n%s", c.Path, c.DiffHunk, c.Body)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// Nil-safe accessors: a classified event whose expected sub-object is absent
// renders with empty fields instead of crashing.

func issueOf(p *event.Payload) event.Issue {
	if p.Issue != nil {
		return *p.Issue
	}
	return event.Issue{}
}

func prOf(p *event.Payload) event.PullRequest {
	if p.PullRequest != nil {
		return *p.PullRequest
	}
	return event.PullRequest{}
}

func reviewOf(p *event.Payload) event.Review {
	if p.Review != nil {
		return *p.Review
	}
	return event.Review{}
}

func commentOf(p *event.Payload) event.Comment {
	if p.Comment != nil {
		return *p.Comment
	}
	return event.Comment{}
}
