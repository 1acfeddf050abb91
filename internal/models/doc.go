// Package models lists the OpenAI chat models available with the
// configured API key, so users can pick one for --suggest openai.
package models
