// Package config loads Waypoint's startup configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/waypoint/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/waypoint/config.toml
//   - Start route: Home
//   - Log file: ~/.local/state/waypoint/waypoint.log
//   - Log level: info
//   - History limit: 0 (unbounded)
//   - Legacy archive: false
//   - Language: en
//
// # TOML Format
//
//	start_route = "Home"
//	log_file = "~/.local/state/waypoint/waypoint.log"
//	log_level = "info"
//	history_limit = 50
//	legacy_archive = false
//	language = "en"
//
// All fields are optional. Tilde expansion is applied to log_file.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - A negative history_limit
//
// Missing config files are NOT an error; Waypoint works out of the box.
package config
