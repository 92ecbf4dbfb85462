// Package openai implements the ai.Provider interface on top of the OpenAI
// chat completions API (/v1/chat/completions). The provider reads its API key
// from the OPENAI_API_KEY environment variable by default; both the key and
// the base URL can be overridden through the builder methods, which also
// makes the provider testable against an httptest server.
package openai
