// Package tui renders the terminal output of the development server: the
// startup banner with the listen URL, the proxy rule table and build
// metadata.
package tui
