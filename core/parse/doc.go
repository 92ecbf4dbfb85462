// Package parse turns free-text model output into typed Go values.
//
// Language models frequently return JSON wrapped in Markdown code fences or
// with small syntax defects (single quotes, trailing commas, missing braces).
// This package strips the fences and repairs the JSON with the jsonrepair
// library before giving up, so callers only deal with a single error path.
package parse
