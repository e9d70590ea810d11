// Package autoindent implements token-driven indent depth inference and the
// autoindent/set-indent algorithm, plus the insert-character hook that
// re-runs it after typing a closing brace/bracket/paren/angle.
// It depends on buffer rather than the reverse, so the hook lives here
// instead of as a buffer method.
package autoindent
