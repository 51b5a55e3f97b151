package windowing_test

import "github.com/anthropics/anthropic-sdk-go"

// Message and block constructors shared by the windowing tests.

func user(blocks ...anthropic.ContentBlockParamUnion) anthropic.MessageParam {
	return anthropic.NewUserMessage(blocks...)
}

func asst(blocks ...anthropic.ContentBlockParamUnion) anthropic.MessageParam {
	return anthropic.NewAssistantMessage(blocks...)
}

func text(s string) anthropic.ContentBlockParamUnion {
	return anthropic.NewTextBlock(s)
}

func toolUse(id string) anthropic.ContentBlockParamUnion {
	return anthropic.ContentBlockParamUnion{
		OfToolUse: &anthropic.ToolUseBlockParam{ID: id, Name: "get_repo_info"},
	}
}

func toolResult(id, payload string) anthropic.ContentBlockParamUnion {
	return anthropic.NewToolResultBlock(id, payload, false)
}
