// Package template implements the {key} placeholder syntax used for
// deriving file names from tag values.
//
// The syntax is deliberately small: single-brace placeholders, doubled
// braces as escapes, nothing else (no formatting verbs, no defaults).
//
//	out, err := template.Expand("{artist} - {title}{original_suffix}", vars)
//	// "Queen - Bohemian Rhapsody.flac"
//
// Errors are typed so callers can distinguish a file that merely lacks a
// tag (*KeyError) from a template the user mistyped (*SyntaxError).
package template
