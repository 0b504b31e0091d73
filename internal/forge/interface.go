// Package forge looks up an actor's permission on a repository via the
// hosting platform's API. Implementations: GitHub, GitLab.
package forge

import (
	"context"
	"fmt"
	"strings"

	"github.com/hookline/hookline/internal/config"
)

// PermissionChecker reports whether an actor is staff (write or admin
// permission) on a repository. Lookup failures are returned as errors and
// must never be collapsed into a boolean by callers.
type PermissionChecker interface {
	// Name identifies the provider (e.g. "github", "gitlab").
	Name() string

	// IsStaff returns true when login has write or admin permission on the
	// repository identified by its full name ("owner/repo").
	IsStaff(ctx context.Context, repoFullName, login string) (bool, error)
}

// New builds the checker selected by cfg.Provider.
func New(cfg config.ForgeConfig) (PermissionChecker, error) {
	switch cfg.Provider {
	case "", "github":
		return NewGitHub(cfg)
	case "gitlab":
		return NewGitLab(cfg)
	default:
		return nil, fmt.Errorf("forge: unknown provider %q", cfg.Provider)
	}
}

// StatusError reports a non-2xx response from the permission endpoint.
type StatusError struct {
	StatusCode int
	Body       string
	Repo       string
	User       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("forge: permission request failed: (code: %d), (text: %s), (repo: %s, user: %s)",
		e.StatusCode, e.Body, e.Repo, e.User)
}

// MalformedError reports a successful response whose body lacked a usable
// permission field.
type MalformedError struct {
	Body string
	Repo string
	User string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("forge: permission response malformed: (text: %s), (repo: %s, user: %s)",
		e.Body, e.Repo, e.User)
}

// splitFullName splits "owner/repo" into its two parts.
func splitFullName(fullName string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || repo == "" {
		return "", "", fmt.Errorf("forge: malformed repository full name %q", fullName)
	}
	return owner, repo, nil
}
