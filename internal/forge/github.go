package forge

import (
	"context"
	"fmt"

	gogithub "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	"github.com/hookline/hookline/internal/config"
)

// GitHubChecker implements PermissionChecker for GitHub and GitHub Enterprise
// via GET /repos/{owner}/{repo}/collaborators/{username}/permission.
type GitHubChecker struct {
	client *gogithub.Client
}

// NewGitHub creates a GitHubChecker from the given configuration.
func NewGitHub(cfg config.ForgeConfig) (*GitHubChecker, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	tc := oauth2.NewClient(context.Background(), ts)
	client := gogithub.NewClient(tc)

	// Support GitHub Enterprise by overriding the base URL.
	if cfg.Host != "" && cfg.Host != "github.com" {
		base := fmt.Sprintf("https://%s/api/v3/", cfg.Host)
		upload := fmt.Sprintf("https://%s/api/uploads/", cfg.Host)
		var err error
		client, err = client.WithEnterpriseURLs(base, upload)
		if err != nil {
			return nil, fmt.Errorf("configuring GitHub enterprise URLs: %w", err)
		}
	}

	return &GitHubChecker{client: client}, nil
}

func (g *GitHubChecker) Name() string { return "github" }

// IsStaff treats "write" and "admin" as staff. A non-2xx status becomes a
// *StatusError, a 2xx body without a permission field a *MalformedError;
// neither is ever mapped to a non-staff default.
func (g *GitHubChecker) IsStaff(ctx context.Context, repoFullName, login string) (bool, error) {
	owner, repo, err := splitFullName(repoFullName)
	if err != nil {
		return false, err
	}

	level, resp, err := g.client.Repositories.GetPermissionLevel(ctx, owner, repo, login)
	if err != nil {
		if errResp, ok := err.(*gogithub.ErrorResponse); ok && errResp.Response != nil {
			return false, &StatusError{
				StatusCode: errResp.Response.StatusCode,
				Body:       errResp.Message,
				Repo:       repoFullName,
				User:       login,
			}
		}
		return false, fmt.Errorf("forge: permission lookup for %s on %s: %w", login, repoFullName, err)
	}

	perm := level.GetPermission()
	if perm == "" {
		body := ""
		if resp != nil {
			body = resp.Status
		}
		return false, &MalformedError{Body: body, Repo: repoFullName, User: login}
	}

	return perm == "write" || perm == "admin", nil
}
