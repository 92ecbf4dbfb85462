// Package insight asks a language model to describe a website and propose
// SEO keywords for it.
//
// The model is instructed to reply with a JSON object; replies wrapped in
// Markdown code fences or with minor syntax defects are still accepted. When
// the reply cannot be parsed at all the generator degrades to a placeholder
// insight instead of failing the run, so keyword enrichment downstream simply
// has nothing to work with rather than an error to handle.
package insight
