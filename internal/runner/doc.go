// Package runner drives the tool-calling conversation loop against the
// Anthropic Messages API and dispatches GitHub tool calls.
//
// The loop has two states. Thinking sends the (policy-windowed) history to
// the model and appends exactly one assistant message. When that message
// carries tool calls the loop moves to Acting: every call is executed
// sequentially in emission order and the results are appended as a single
// user message, then the loop returns to Thinking. An assistant message
// without tool calls ends the turn.
//
// Invariants:
//   - History is append-only and monotonically growing within a session.
//   - Every tool_result carries the ID of a tool_use from the immediately
//     preceding assistant message, in the same order.
//   - Tool failures and unknown tool names become tool_result content the
//     model can react to; they never abort the loop.
package runner
