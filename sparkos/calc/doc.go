// Package calc implements the calculator engine behind the Spark calculator screen.
//
// The engine is a single-threaded state machine over three pieces of state: the expression
// being typed, the displayed result, and a short most-recent-first history. Views call the
// mutating operations (AppendToken, Evaluate, ApplyUnary, ClearAll, ClearEntry, ClearHistory) in
// response to input and re-render from Snapshot.
//
// Expressions are sanitized down to digits, '.', parentheses and the operators + - * / % before
// they are tokenized and parsed by a recursive-descent parser. Failures leave the result showing
// "Error" until a deferred reset, scheduled on the engine's Scheduler, puts it back to "0".
package calc
