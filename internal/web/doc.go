// Package web serves the embedded single-page UI.
package web
