// Package ui renders user-facing progress and error lines. Colours follow the
// terminal's capabilities: when output is not a terminal the text is written
// without escape sequences.
package ui
