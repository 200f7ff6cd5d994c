// Package action implements the server action layer: the only boundary where
// generation failures become user-visible.
//
// Each action checks the provider credential it needs before doing anything
// else, validates the request, runs its flow inside a failure boundary and
// flattens the outcome into a Result holding either data or one error
// message. Nothing is retried.
package action
