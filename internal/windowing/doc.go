// Package windowing decides how much conversation history is replayed to the
// model each step.
//
// The retention policy is explicit and pluggable:
//   - KeepAll replays everything (the default; context grows without bound).
//   - BudgetWindow keeps the newest whole groups that fit a token budget.
//
// Invariant: a window never splits an assistant tool_use message from the user
// message carrying its tool_result blocks; the two always travel as one group.
package windowing
