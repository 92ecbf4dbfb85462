// Package enrich merges AI-suggested keywords with real search-volume and
// competition data from DataForSEO.
//
// Enrichment is an optional enhancement, not a required pipeline stage:
// provider-reported failures and transport failures both surface as an
// "unavailable" outcome rather than an error, and callers are expected to
// continue with the basic AI-only analysis.
package enrich
