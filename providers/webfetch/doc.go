// Package webfetch retrieves a web page and reduces it to clean text suitable
// for language-model analysis: script, style, noscript and iframe subtrees
// are removed, the remaining markup is converted to readable text, and all
// whitespace runs are collapsed to single spaces.
package webfetch
