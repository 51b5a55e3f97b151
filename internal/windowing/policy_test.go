package windowing_test

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/petasbytes/repo-agent/internal/windowing"
)

func TestKeepAll_ReturnsEverything(t *testing.T) {
	msgs := []anthropic.MessageParam{
		user(text("q")),
		asst(toolUse("a")),
		user(toolResult("a", "r")),
		asst(text("answer")),
	}

	window, stats := windowing.KeepAll{}.Prepare(msgs)
	if len(window) != len(msgs) {
		t.Fatalf("window length = %d, want %d", len(window), len(msgs))
	}
	if stats.IncludedGroups != 3 || stats.SkippedGroups != 0 || stats.OverBudgetNewest {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestBudgetWindow_BudgetRespected_OrderPreserved(t *testing.T) {
	// Oldest -> newest. Costs with HeuristicCounter:
	// G0 user(text "old") = 7, G1 pair = 4 + 5 = 9, G2 user(text "tail") = 8.
	msgs := []anthropic.MessageParam{
		user(text("old")),
		asst(toolUse("a")),
		user(toolResult("a", "r")),
		user(text("tail")),
	}

	w := windowing.BudgetWindow{Budget: 17}
	window, stats := w.Prepare(msgs)

	if stats.EstimatedTokens != 17 || stats.IncludedGroups != 2 || stats.SkippedGroups != 1 || stats.OverBudgetNewest {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if len(window) != 3 { // msgs[1:], the pair plus the tail
		t.Fatalf("window length = %d, want 3", len(window))
	}
	if window[0].Role != anthropic.MessageParamRoleAssistant {
		t.Fatalf("window must start at the pair, got role %q", window[0].Role)
	}
}

func TestBudgetWindow_NeverSplitsPair(t *testing.T) {
	// Budget fits the newest singleton plus only half the pair; the pair must
	// be dropped whole.
	msgs := []anthropic.MessageParam{
		asst(toolUse("a")),
		user(toolResult("a", "a long tool payload")),
		user(text("q")),
	}

	w := windowing.BudgetWindow{Budget: 10} // newest singleton costs 5
	window, stats := w.Prepare(msgs)

	if len(window) != 1 || stats.IncludedGroups != 1 {
		t.Fatalf("expected only the newest singleton, got window=%d stats=%+v", len(window), stats)
	}
}

func TestBudgetWindow_NewestGroupOverBudget(t *testing.T) {
	msgs := []anthropic.MessageParam{
		user(text("a question that is far larger than the budget allows")),
	}

	w := windowing.BudgetWindow{Budget: 5}
	window, stats := w.Prepare(msgs)

	if len(window) != 0 {
		t.Fatalf("expected empty window, got %d messages", len(window))
	}
	if !stats.OverBudgetNewest || stats.IncludedGroups != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestBudgetWindow_ZeroBudget(t *testing.T) {
	msgs := []anthropic.MessageParam{user(text("q"))}

	window, stats := windowing.BudgetWindow{Budget: 0}.Prepare(msgs)
	if len(window) != 0 || !stats.OverBudgetNewest {
		t.Fatalf("zero budget should yield empty window, stats=%+v", stats)
	}
}

func TestBudgetWindow_EmptyHistory(t *testing.T) {
	window, stats := windowing.BudgetWindow{Budget: 100}.Prepare(nil)
	if window != nil || stats.IncludedGroups != 0 {
		t.Fatalf("unexpected result for empty history: window=%v stats=%+v", window, stats)
	}
}
