// Package tools defines the agent's tool catalog over the GitHub API.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Registry(client): the closed set of seven repository tools, each bound
//     to a ghclient.Client.
//
// Handlers return JSON strings for the model to read; they never format
// errors themselves — the runner turns handler errors into tool_result blocks.
package tools
