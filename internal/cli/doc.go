// Package cli handles command-line argument parsing and validation for the
// winbridge entrypoint, translating flags into an app.Config.
package cli
