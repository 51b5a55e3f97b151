package tools

import "github.com/petasbytes/repo-agent/internal/ghclient"

// Registry returns all tool definitions wired to the given GitHub client.
// The set is closed: the runner treats any other name as a recoverable error.
func Registry(c *ghclient.Client) []ToolDefinition {
	return []ToolDefinition{
		RepoInfoDefinition(c),
		RepoLanguagesDefinition(c),
		RepoCommitsDefinition(c),
		RepoBranchesDefinition(c),
		RepoContributorsDefinition(c),
		ListRepoFilesDefinition(c),
		FileContentDefinition(c),
	}
}
