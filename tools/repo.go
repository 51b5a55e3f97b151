package tools

import (
	"context"
	"encoding/json"

	"github.com/petasbytes/repo-agent/internal/ghclient"
)

// RepoURLInput is the argument shape shared by every repository-level tool.
type RepoURLInput struct {
	URL string `json:"url" jsonschema_description:"GitHub repository URL, e.g. https://github.com/tiangolo/fastapi"`
}

var repoURLInputSchema = GenerateSchema[RepoURLInput]()

func parseRepoInput(input json.RawMessage) (ghclient.RepoRef, error) {
	var in RepoURLInput
	if err := json.Unmarshal(input, &in); err != nil {
		return ghclient.RepoRef{}, err
	}
	return ghclient.ParseRepoURL(in.URL)
}

// RepoInfoDefinition returns the get_repo_info tool bound to c.
func RepoInfoDefinition(c *ghclient.Client) ToolDefinition {
	return ToolDefinition{
		Name:        "get_repo_info",
		Description: "Get basic info about a GitHub repository.",
		InputSchema: repoURLInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			ref, err := parseRepoInput(input)
			if err != nil {
				return "", err
			}
			repo, err := c.Repo(ctx, ref)
			if err != nil {
				return "", err
			}
			return marshalResult(repo)
		},
	}
}

// RepoLanguagesDefinition returns the get_repo_languages tool bound to c.
func RepoLanguagesDefinition(c *ghclient.Client) ToolDefinition {
	return ToolDefinition{
		Name:        "get_repo_languages",
		Description: "Check what programming languages are used in the repo.",
		InputSchema: repoURLInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			ref, err := parseRepoInput(input)
			if err != nil {
				return "", err
			}
			langs, err := c.Languages(ctx, ref)
			if err != nil {
				return "", err
			}
			return marshalResult(langs)
		},
	}
}

// RepoCommitsDefinition returns the get_repo_commits tool bound to c.
func RepoCommitsDefinition(c *ghclient.Client) ToolDefinition {
	return ToolDefinition{
		Name:        "get_repo_commits",
		Description: "Get the 10 most recent commits from the repository.",
		InputSchema: repoURLInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			ref, err := parseRepoInput(input)
			if err != nil {
				return "", err
			}
			commits, err := c.RecentCommits(ctx, ref)
			if err != nil {
				return "", err
			}
			return marshalResult(commits)
		},
	}
}

// RepoBranchesDefinition returns the get_repo_branches tool bound to c.
func RepoBranchesDefinition(c *ghclient.Client) ToolDefinition {
	return ToolDefinition{
		Name:        "get_repo_branches",
		Description: "See all the branches in the repository.",
		InputSchema: repoURLInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			ref, err := parseRepoInput(input)
			if err != nil {
				return "", err
			}
			branches, err := c.Branches(ctx, ref)
			if err != nil {
				return "", err
			}
			return marshalResult(branches)
		},
	}
}

// RepoContributorsDefinition returns the get_repo_contributors tool bound to c.
func RepoContributorsDefinition(c *ghclient.Client) ToolDefinition {
	return ToolDefinition{
		Name:        "get_repo_contributors",
		Description: "Find out who contributes to this repository.",
		InputSchema: repoURLInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			ref, err := parseRepoInput(input)
			if err != nil {
				return "", err
			}
			contribs, err := c.Contributors(ctx, ref)
			if err != nil {
				return "", err
			}
			return marshalResult(contribs)
		},
	}
}
