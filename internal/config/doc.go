// Package config loads the console configuration: the backend origin and
// timeout, session token location, snapshot store settings, logging, and
// per-screen page sizes. YAML with ${VAR} environment expansion for the main
// file; TOML for the saved filter presets kept under the XDG config dir.
package config
