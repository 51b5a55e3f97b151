package ghclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v84/github"
	"golang.org/x/oauth2"
)

// recentCommitCount is the fixed page size for RecentCommits. Only the first
// page is requested; there is no "has more" signal.
const recentCommitCount = 10

// Client exposes the read operations the agent tools need. It holds no state
// beyond the authenticated HTTP client.
type Client struct {
	gh *github.Client
}

// New returns a Client that authenticates every request with the given
// bearer token. The token is passed in explicitly; this package never reads
// the environment.
func New(ctx context.Context, token string) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{gh: github.NewClient(oauth2.NewClient(ctx, ts))}
}

// NewFromGitHub wraps an existing go-github client. Tests use this to point
// the catalog at a local server.
func NewFromGitHub(gh *github.Client) *Client {
	return &Client{gh: gh}
}

// Repo returns basic metadata for the repository.
func (c *Client) Repo(ctx context.Context, ref RepoRef) (*github.Repository, error) {
	repo, _, err := c.gh.Repositories.Get(ctx, ref.Owner, ref.Name)
	return repo, err
}

// Languages returns the language → byte-count breakdown for the repository.
func (c *Client) Languages(ctx context.Context, ref RepoRef) (map[string]int, error) {
	langs, _, err := c.gh.Repositories.ListLanguages(ctx, ref.Owner, ref.Name)
	return langs, err
}

// RecentCommits returns up to the 10 most recent commits.
func (c *Client) RecentCommits(ctx context.Context, ref RepoRef) ([]*github.RepositoryCommit, error) {
	commits, _, err := c.gh.Repositories.ListCommits(ctx, ref.Owner, ref.Name, &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: recentCommitCount},
	})
	return commits, err
}

// Branches returns the first page of branches.
func (c *Client) Branches(ctx context.Context, ref RepoRef) ([]*github.Branch, error) {
	branches, _, err := c.gh.Repositories.ListBranches(ctx, ref.Owner, ref.Name, nil)
	return branches, err
}

// Contributors returns the first page of contributors.
func (c *Client) Contributors(ctx context.Context, ref RepoRef) ([]*github.Contributor, error) {
	contribs, _, err := c.gh.Repositories.ListContributors(ctx, ref.Owner, ref.Name, nil)
	return contribs, err
}

// Contents fetches the entry at path (repository root when path is empty).
// Exactly one of the returns is non-nil: file for a single file, dir for a
// directory listing.
func (c *Client) Contents(ctx context.Context, ref RepoRef, path string) (*github.RepositoryContent, []*github.RepositoryContent, error) {
	file, dir, _, err := c.gh.Repositories.GetContents(ctx, ref.Owner, ref.Name, path, nil)
	return file, dir, err
}

// File is the decoded payload returned by FileContent.
type File struct {
	Path    string `json:"file_path"`
	Content string `json:"content"`
}

// FileContent fetches path and decodes its base64 transport encoding to text,
// replacing bytes that are not valid UTF-8. When path names a directory the
// raw listing is returned instead and the file result is nil.
func (c *Client) FileContent(ctx context.Context, ref RepoRef, path string) (*File, []*github.RepositoryContent, error) {
	file, dir, err := c.Contents(ctx, ref, path)
	if err != nil {
		return nil, nil, err
	}
	if file == nil {
		return nil, dir, nil
	}
	content, err := file.GetContent()
	if err != nil {
		return nil, nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &File{Path: path, Content: strings.ToValidUTF8(content, "�")}, nil, nil
}
