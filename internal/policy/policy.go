// Package policy decides whether and where an event is relayed: blacklist
// checks, an author-permission lookup, and per-audience event whitelists.
package policy

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/hookline/hookline/internal/event"
)

// Policy holds the four filter lists. It is an explicit value handed to the
// Filter so tests and deployments can substitute their own lists.
type Policy struct {
	// ActorBlacklist lists sender logins that never trigger notifications.
	ActorBlacklist []string `yaml:"actor_blacklist"`
	// RepoBlacklist lists repository full names that never trigger notifications.
	RepoBlacklist []string `yaml:"repo_blacklist"`
	// StaffEvents is the whitelist of event types relayed to the staff channel.
	StaffEvents []event.Type `yaml:"staff_events"`
	// ExternalEvents is the whitelist of event types relayed to the external channel.
	ExternalEvents []event.Type `yaml:"external_events"`
}

// Default returns the built-in policy.
func Default() Policy {
	return Policy{
		ActorBlacklist: []string{"github-actions[bot]"},
		RepoBlacklist:  []string{"berty/bugs"},
		StaffEvents: []event.Type{
			event.TypeIssueOpened,
			event.TypeIssueDeleted,
			event.TypeIssueClosed,
			event.TypeIssueReopened,
			event.TypePROpened,
			event.TypePRClosed,
			event.TypePRReopened,
			event.TypePRReadyForReview,
			event.TypePRReviewSubmitted,
		},
		ExternalEvents: []event.Type{
			event.TypeCommitComment,
			event.TypeIssueCommentCreated,
			event.TypeIssueOpened,
			event.TypeIssueDeleted,
			event.TypeIssueClosed,
			event.TypeIssueReopened,
			event.TypePROpened,
			event.TypePRClosed,
			event.TypePRReopened,
			event.TypePRReadyForReview,
			event.TypePRReviewSubmitted,
			event.TypePRReviewCommentCreated,
		},
	}
}

// Load reads a YAML policy file. Lists present in the file replace the
// corresponding default list; absent lists keep their defaults.
func Load(path string) (Policy, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("policy: reading %q: %w", path, err)
	}

	var override Policy
	if err := yaml.Unmarshal(data, &override); err != nil {
		return p, fmt.Errorf("policy: parsing %q: %w", path, err)
	}

	if override.ActorBlacklist != nil {
		p.ActorBlacklist = override.ActorBlacklist
	}
	if override.RepoBlacklist != nil {
		p.RepoBlacklist = override.RepoBlacklist
	}
	if override.StaffEvents != nil {
		p.StaffEvents = override.StaffEvents
	}
	if override.ExternalEvents != nil {
		p.ExternalEvents = override.ExternalEvents
	}
	return p, nil
}
