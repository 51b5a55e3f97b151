package windowing

import "github.com/anthropics/anthropic-sdk-go"

// Group describes a contiguous span of messages [Start, End) that must be
// kept or dropped together.
type Group struct {
	Start int // inclusive index into msgs
	End   int // exclusive index into msgs
}

// GroupMessages splits msgs into atomic units. An assistant message carrying
// tool_use blocks forms a pair with the immediately following user message
// when that message's leading tool_result blocks cover exactly the same IDs;
// everything else is a singleton.
func GroupMessages(msgs []anthropic.MessageParam) []Group {
	groups := make([]Group, 0, len(msgs))
	for i := 0; i < len(msgs); {
		ids := toolUseIDs(msgs[i])
		if len(ids) > 0 && i+1 < len(msgs) && resultsCover(msgs[i+1], ids) {
			groups = append(groups, Group{Start: i, End: i + 2})
			i += 2
			continue
		}
		groups = append(groups, Group{Start: i, End: i + 1})
		i++
	}
	return groups
}

func toolUseIDs(m anthropic.MessageParam) []string {
	if m.Role != anthropic.MessageParamRoleAssistant {
		return nil
	}
	var ids []string
	for _, b := range m.Content {
		if tu := b.OfToolUse; tu != nil {
			ids = append(ids, tu.ID)
		}
	}
	return ids
}

// resultsCover reports whether m is a user message whose leading tool_result
// blocks match ids exactly: all results come before any other block, every id
// is answered, and no extra results appear.
func resultsCover(m anthropic.MessageParam, ids []string) bool {
	if m.Role != anthropic.MessageParamRoleUser {
		return false
	}
	got := make(map[string]bool, len(ids))
	leading := true
	for _, b := range m.Content {
		if tr := b.OfToolResult; tr != nil {
			if !leading {
				return false
			}
			got[tr.ToolUseID] = true
			continue
		}
		leading = false
	}
	if len(got) != len(ids) {
		return false
	}
	for _, id := range ids {
		if !got[id] {
			return false
		}
	}
	return true
}
