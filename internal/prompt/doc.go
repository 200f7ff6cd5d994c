// Package prompt builds the provider prompts for marketing text and images.
// Builders are pure: they depend only on the request they are given.
package prompt
