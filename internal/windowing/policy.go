package windowing

import "github.com/anthropics/anthropic-sdk-go"

// Stats summarizes what a Policy kept and skipped.
type Stats struct {
	EstimatedTokens  int
	Budget           int
	IncludedGroups   int
	SkippedGroups    int
	OverBudgetNewest bool // newest group alone exceeds the budget
}

// Policy selects the portion of the history to replay to the model.
type Policy interface {
	Prepare(msgs []anthropic.MessageParam) ([]anthropic.MessageParam, Stats)
}

// KeepAll replays the full history every step.
type KeepAll struct{}

func (KeepAll) Prepare(msgs []anthropic.MessageParam) ([]anthropic.MessageParam, Stats) {
	return msgs, Stats{IncludedGroups: len(GroupMessages(msgs))}
}

// BudgetWindow keeps the newest whole groups whose estimated cost fits within
// Budget, scanning newest to oldest. A nil Counter falls back to
// HeuristicCounter.
type BudgetWindow struct {
	Budget  int
	Counter TokenCounter
}

func (w BudgetWindow) Prepare(msgs []anthropic.MessageParam) ([]anthropic.MessageParam, Stats) {
	if len(msgs) == 0 {
		return nil, Stats{Budget: w.Budget}
	}

	groups := GroupMessages(msgs)
	stats := Stats{Budget: w.Budget, SkippedGroups: len(groups)}
	if w.Budget <= 0 {
		stats.OverBudgetNewest = true
		return nil, stats
	}

	counter := w.Counter
	if counter == nil {
		counter = HeuristicCounter{}
	}

	total := 0
	start := len(groups)
	for gi := len(groups) - 1; gi >= 0; gi-- {
		cost := counter.CountGroup(groups[gi], msgs)
		if total+cost > w.Budget {
			if gi == len(groups)-1 {
				// Even the newest group alone does not fit.
				stats.OverBudgetNewest = true
				return nil, stats
			}
			break
		}
		total += cost
		start = gi
	}

	stats.EstimatedTokens = total
	stats.IncludedGroups = len(groups) - start
	stats.SkippedGroups = start
	return msgs[groups[start].Start:], stats
}
