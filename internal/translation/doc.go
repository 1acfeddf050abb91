// Package translation fills placeholder values of a reconciled document
// with machine-translated suggestions. It wraps the OpenAI and Gemini APIs
// behind a common Suggester, guards them with a circuit breaker and a rate
// limiter, caches results for the duration of a run and optionally reuses a
// persistent translation memory.
package translation
