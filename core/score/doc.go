// Package score derives SEO heuristics from raw keyword metrics: a
// difficulty score estimating how hard a keyword is to rank for, an
// opportunity score favoring high volume and low competition, and three
// advisory insight strings. All scores are pure functions of a single
// keyword's own metrics.
package score
