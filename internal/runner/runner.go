package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/chainguard-dev/clog"
	"github.com/petasbytes/repo-agent/internal/telemetry"
	"github.com/petasbytes/repo-agent/internal/windowing"
	"github.com/petasbytes/repo-agent/tools"
)

// NoResponse is returned by FinalText when the history holds no assistant
// answer.
const NoResponse = "(no response)"

// ModelClient is the slice of the Anthropic Messages API the runner needs.
// *anthropic.MessageService satisfies it; tests substitute scripted
// implementations.
type ModelClient interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type Runner struct {
	Client    ModelClient
	Tools     []tools.ToolDefinition
	Model     anthropic.Model
	MaxTokens int64
	Policy    windowing.Policy
}

func New(client ModelClient, toolDefs []tools.ToolDefinition, model anthropic.Model) *Runner {
	return &Runner{
		Client:    client,
		Tools:     toolDefs,
		Model:     model,
		MaxTokens: 1024,
		Policy:    windowing.KeepAll{},
	}
}

func (r *Runner) anthropicTools() []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(r.Tools))
	for _, t := range r.Tools {
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: t.InputSchema,
		}})
	}
	return out
}

// RunOneStep sends the policy-prepared window of conv and executes any tool
// calls in the reply. It returns the assistant message plus one tool_result
// block per tool call, in emission order; the caller owns appending both to
// the history.
func (r *Runner) RunOneStep(ctx context.Context, conv []anthropic.MessageParam) (*anthropic.Message, []anthropic.ContentBlockParamUnion, error) {
	window, stats := r.Policy.Prepare(conv)

	turnID, ok := telemetry.TurnIDFromContext(ctx)
	if !ok {
		turnID = fmt.Sprintf("turn-%d", time.Now().UnixNano())
		ctx = telemetry.WithTurnID(ctx, turnID)
	}

	telemetry.Emit("window_prepared", map[string]any{
		"turn_id":            turnID,
		"model":              string(r.Model),
		"budget":             stats.Budget,
		"estimated_tokens":   stats.EstimatedTokens,
		"included_groups":    stats.IncludedGroups,
		"skipped_groups":     stats.SkippedGroups,
		"over_budget_newest": stats.OverBudgetNewest,
	})

	// The newest group must always fit; anything else means the budget is
	// misconfigured, so fail fast instead of sending an empty window.
	if stats.OverBudgetNewest {
		return nil, nil, fmt.Errorf("windowing: newest group exceeds the token budget (%d); raise REPOAGENT_TOKEN_BUDGET", stats.Budget)
	}

	msg, err := r.Client.New(ctx, anthropic.MessageNewParams{
		Model:     r.Model,
		MaxTokens: r.MaxTokens,
		Messages:  window,
		Tools:     r.anthropicTools(),
	})
	if err != nil {
		return nil, nil, err
	}

	var toolResults []anthropic.ContentBlockParamUnion
	for _, block := range msg.Content {
		if tu, ok := block.AsAny().(anthropic.ToolUseBlock); ok {
			input := json.RawMessage(tu.JSON.Input.Raw())
			toolResults = append(toolResults, r.execTool(ctx, tu.ID, tu.Name, input))
		}
	}
	return msg, toolResults, nil
}

// execTool dispatches one call against the catalog. Unknown names and
// handler errors come back as error tool_result blocks so the model can
// recover on the next step.
func (r *Runner) execTool(ctx context.Context, id, name string, input json.RawMessage) anthropic.ContentBlockParamUnion {
	log := clog.FromContext(ctx).With("tool_name", name)
	turnID, _ := telemetry.TurnIDFromContext(ctx)

	emit := func(start time.Time, out string, errStr string) {
		f := telemetry.Features(out)
		fields := map[string]any{
			"turn_id":      turnID,
			"tool_name":    name,
			"duration_ms":  time.Since(start).Milliseconds(),
			"input_bytes":  len(input),
			"output_bytes": f.Bytes,
			"output_runes": f.Runes,
			"output_lines": f.Lines,
		}
		if errStr != "" {
			fields["error"] = errStr
		}
		telemetry.Emit("tool_exec", fields)
	}

	var def *tools.ToolDefinition
	for i := range r.Tools {
		if r.Tools[i].Name == name {
			def = &r.Tools[i]
			break
		}
	}

	start := time.Now()
	if def == nil {
		log.Warn("unknown tool requested")
		emit(start, "", "tool not found")
		return anthropic.NewToolResultBlock(id, fmt.Sprintf("Error executing %s: tool not found", name), true)
	}

	out, err := def.Function(ctx, input)
	if err != nil {
		log.With("error", err).Warn("tool execution failed")
		// Keep telemetry error strings generic; the detailed message goes to
		// the model inside the tool result.
		emit(start, "", "tool error")
		return anthropic.NewToolResultBlock(id, fmt.Sprintf("Error executing %s: %v", name, err), true)
	}

	log.With("output_bytes", len(out)).Debug("tool executed")
	emit(start, out, "")
	return anthropic.NewToolResultBlock(id, out, false)
}

// RunTurn drives the loop until the model answers without tool calls,
// returning the grown history.
func (r *Runner) RunTurn(ctx context.Context, conv []anthropic.MessageParam) ([]anthropic.MessageParam, error) {
	for {
		msg, toolResults, err := r.RunOneStep(ctx, conv)
		if err != nil {
			return conv, err
		}
		conv = append(conv, msg.ToParam())
		if len(toolResults) == 0 {
			return conv, nil
		}
		// Tool results go back to the model as a single user message.
		conv = append(conv, anthropic.NewUserMessage(toolResults...))
	}
}

const analysisPrompt = `Analyze %s and give me a comprehensive summary.

Make sure to:
1. Get basic repository information
2. Check the programming languages used
3. Review recent commits
4. Look at the branches
5. See who the main contributors are
6. Browse the repository structure and list files

After listing files, I will ask you to analyze specific files.`

// Analyze seeds a fresh session with the repository analysis prompt and runs
// one full turn.
func (r *Runner) Analyze(ctx context.Context, repoURL string) ([]anthropic.MessageParam, error) {
	conv := []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(fmt.Sprintf(analysisPrompt, repoURL))),
	}
	return r.RunTurn(ctx, conv)
}

// FinalText scans the history backward for the most recent assistant message
// carrying text and returns that text. Assistant messages holding only tool
// calls are skipped. Returns NoResponse when no answer exists.
func FinalText(conv []anthropic.MessageParam) string {
	for i := len(conv) - 1; i >= 0; i-- {
		if conv[i].Role != anthropic.MessageParamRoleAssistant {
			continue
		}
		var parts []string
		for _, b := range conv[i].Content {
			if tb := b.OfText; tb != nil && tb.Text != "" {
				parts = append(parts, tb.Text)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "\n")
		}
	}
	return NoResponse
}
