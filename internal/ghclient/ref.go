package ghclient

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRepoRef reports a URL that does not name an owner/repository pair.
var ErrInvalidRepoRef = errors.New("invalid repository reference")

// RepoRef identifies a remote repository by owner and name.
type RepoRef struct {
	Owner string
	Name  string
}

func (r RepoRef) String() string { return r.Owner + "/" + r.Name }

// ParseRepoURL extracts the (owner, name) pair from a GitHub repository URL.
// Trailing slashes and a trailing ".git" suffix are ignored, so
// "https://github.com/tiangolo/fastapi/" and
// "https://github.com/tiangolo/fastapi.git" both parse to tiangolo/fastapi.
// URLs with fewer than two path segments return ErrInvalidRepoRef.
func ParseRepoURL(rawURL string) (RepoRef, error) {
	trimmed := strings.TrimRight(rawURL, "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")

	parts := strings.Split(trimmed, "/")
	if len(parts) < 2 {
		return RepoRef{}, fmt.Errorf("%w: %q", ErrInvalidRepoRef, rawURL)
	}
	ref := RepoRef{Owner: parts[len(parts)-2], Name: parts[len(parts)-1]}
	if ref.Owner == "" || ref.Name == "" {
		return RepoRef{}, fmt.Errorf("%w: %q", ErrInvalidRepoRef, rawURL)
	}
	return ref, nil
}
