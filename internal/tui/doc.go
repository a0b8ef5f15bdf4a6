// Package tui implements the interactive terminal mode of the client.
//
// A single screen holds a text input, the selected operation and shift, and
// the result of the last request. Requests go through the adapter package,
// so the terminal UI shows exactly what the HTTP API returns.
package tui
