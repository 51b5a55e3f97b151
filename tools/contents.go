package tools

import (
	"context"
	"encoding/json"

	"github.com/petasbytes/repo-agent/internal/ghclient"
)

type ListRepoFilesInput struct {
	URL  string `json:"url" jsonschema_description:"GitHub repository URL, e.g. https://github.com/tiangolo/fastapi"`
	Path string `json:"path,omitempty" jsonschema_description:"Directory path within the repository (defaults to the root)."`
}

var listRepoFilesInputSchema = GenerateSchema[ListRepoFilesInput]()

// ListRepoFilesDefinition returns the list_repo_files tool bound to c.
func ListRepoFilesDefinition(c *ghclient.Client) ToolDefinition {
	return ToolDefinition{
		Name:        "list_repo_files",
		Description: "Browse files and folders in the repository.",
		InputSchema: listRepoFilesInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			var in ListRepoFilesInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", err
			}
			ref, err := ghclient.ParseRepoURL(in.URL)
			if err != nil {
				return "", err
			}
			file, dir, err := c.Contents(ctx, ref, in.Path)
			if err != nil {
				return "", err
			}
			if file != nil {
				// Path named a single file; return its record.
				return marshalResult(file)
			}
			return marshalResult(dir)
		},
	}
}

type FileContentInput struct {
	URL      string `json:"url" jsonschema_description:"GitHub repository URL, e.g. https://github.com/tiangolo/fastapi"`
	FilePath string `json:"file_path" jsonschema_description:"Path of the file to read, e.g. README.md or docs/index.md"`
}

var fileContentInputSchema = GenerateSchema[FileContentInput]()

// FileContentDefinition returns the get_file_content tool bound to c.
func FileContentDefinition(c *ghclient.Client) ToolDefinition {
	return ToolDefinition{
		Name:        "get_file_content",
		Description: "Read the actual content of a file in the repository.",
		InputSchema: fileContentInputSchema,
		Function: func(ctx context.Context, input json.RawMessage) (string, error) {
			var in FileContentInput
			if err := json.Unmarshal(input, &in); err != nil {
				return "", err
			}
			ref, err := ghclient.ParseRepoURL(in.URL)
			if err != nil {
				return "", err
			}
			file, raw, err := c.FileContent(ctx, ref, in.FilePath)
			if err != nil {
				return "", err
			}
			if file == nil {
				// Not a file; fall through to the raw listing.
				return marshalResult(raw)
			}
			return marshalResult(file)
		},
	}
}
