// Package commands defines the panel CLI, a text host for schema-driven
// widget panels.
//
// Commands
//
//   - render     Load the schema document and print the panel
//   - shuffle    Print the panel, then reshuffle its order n times
//   - select     Set the selector's variant and print the panel
//   - watch      Reprint the panel whenever its document changes
//
// # Implementation
//
// The root command builds one panel.Facade before any subcommand runs. The
// document source is chosen from --redis-key, --file or --url, in that
// order. With --verbose every panel signal is logged through log/slog.
package commands
