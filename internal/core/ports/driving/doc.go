// Package driving defines the interfaces that external actors use to drive core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The TUI, CLI, web dashboard, directory watcher and MCP server call these
// interfaces. Core services implement them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driving
