// Package enrich augments vocabulary words with an Uzbek translation and
// definition via a text-generation service. Providers share a common
// interface so OpenAI and Gemini are interchangeable behind configuration.
package enrich
