// Package analyze composes the full SEO analysis pipeline: website insight
// generation, optional keyword enrichment, scoring, ranking, and summary
// aggregation. The pipeline is linear and synchronous; each stage completes
// before the next begins and nothing loops back.
//
// Collaborators are injected as interfaces so tests can substitute fakes for
// the language-model and search-data boundaries.
package analyze
