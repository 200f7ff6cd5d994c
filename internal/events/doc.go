// Package events provides types and interfaces for reporting generation
// activity without coupling producers to consumers.
//
// The server action layer emits a GenerationEvent after every provider
// attempt. Handlers such as the generation-log recorder subscribe to those
// events through an EventEmitter, so the action layer never imports a store.
//
// The primary components are:
// - GenerationEvent: Describes one completed generation attempt
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
