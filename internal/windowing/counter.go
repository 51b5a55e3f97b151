package windowing

import (
	"unicode/utf8"

	"github.com/anthropics/anthropic-sdk-go"
)

// TokenCounter estimates the input-token cost of a group.
type TokenCounter interface {
	CountGroup(g Group, all []anthropic.MessageParam) int
}

// blockOverhead is a fixed per-block cost covering role and formatting tokens.
const blockOverhead = 4

// HeuristicCounter is a deterministic rune-based estimator: text and
// tool_result text contribute their rune count, every block adds a small
// fixed overhead. Deliberately crude; it only needs to be monotone in size.
type HeuristicCounter struct{}

func (HeuristicCounter) CountGroup(g Group, all []anthropic.MessageParam) int {
	total := 0
	for i := g.Start; i < g.End && i < len(all); i++ {
		for _, b := range all[i].Content {
			total += countBlock(b)
		}
	}
	return total
}

func countBlock(b anthropic.ContentBlockParamUnion) int {
	if tb := b.OfText; tb != nil {
		return utf8.RuneCountInString(tb.Text) + blockOverhead
	}
	if tr := b.OfToolResult; tr != nil {
		n := 0
		for _, c := range tr.Content {
			if t := c.OfText; t != nil {
				n += utf8.RuneCountInString(t.Text)
			}
		}
		return n + blockOverhead
	}
	// tool_use and other block kinds count overhead only.
	return blockOverhead
}
