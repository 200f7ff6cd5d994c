// Package flow implements the generation flows: marketing text, a single
// image, and a dual image from two independent providers.
//
// A flow builds the prompt for its request, makes exactly one call per
// provider, and validates the provider output into the fixed shapes defined in
// package generation. Flows never retry and never return partial text.
package flow
