package forge

import (
	"context"
	"fmt"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/hookline/hookline/internal/config"
)

// GitLabChecker implements PermissionChecker for GitLab (cloud and
// self-hosted). Staff means an inherited project access level of Developer or
// above, the closest analogue to GitHub's write permission.
type GitLabChecker struct {
	client *gitlab.Client
}

// NewGitLab creates a GitLabChecker from the given configuration.
func NewGitLab(cfg config.ForgeConfig) (*GitLabChecker, error) {
	opts := []gitlab.ClientOptionFunc{}
	if cfg.Host != "" && cfg.Host != "gitlab.com" {
		base := fmt.Sprintf("https://%s/api/v4/", cfg.Host)
		opts = append(opts, gitlab.WithBaseURL(base))
	}

	client, err := gitlab.NewClient(cfg.Token, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating GitLab client: %w", err)
	}

	return &GitLabChecker{client: client}, nil
}

func (g *GitLabChecker) Name() string { return "gitlab" }

func (g *GitLabChecker) IsStaff(ctx context.Context, repoFullName, login string) (bool, error) {
	users, resp, err := g.client.Users.ListUsers(&gitlab.ListUsersOptions{
		Username: gitlab.Ptr(login),
	}, gitlab.WithContext(ctx))
	if err != nil {
		return false, g.lookupError(resp, err, repoFullName, login)
	}
	if len(users) == 0 {
		return false, &MalformedError{Body: "user not found", Repo: repoFullName, User: login}
	}

	member, resp, err := g.client.ProjectMembers.GetInheritedProjectMember(repoFullName, users[0].ID, gitlab.WithContext(ctx))
	if err != nil {
		return false, g.lookupError(resp, err, repoFullName, login)
	}
	if member == nil {
		return false, &MalformedError{Body: "empty member response", Repo: repoFullName, User: login}
	}

	return member.AccessLevel >= gitlab.DeveloperPermissions, nil
}

func (g *GitLabChecker) lookupError(resp *gitlab.Response, err error, repo, login string) error {
	if resp != nil && resp.Response != nil {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Body:       err.Error(),
			Repo:       repo,
			User:       login,
		}
	}
	return fmt.Errorf("forge: permission lookup for %s on %s: %w", login, repo, err)
}
