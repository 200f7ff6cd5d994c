// Package api handles incoming HTTP requests, request decoding and response
// formatting. It adapts the generation actions, the per-session Post boards
// and the generation log to JSON endpoints.
package api
