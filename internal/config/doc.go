// Package config loads jaap's TOML configuration.
//
// # Configuration Discovery
//
// Load resolves the file in this order:
//
//  1. An explicit path passed on the command line
//  2. ~/.config/jaap/config.toml
//  3. Built-in defaults when the file does not exist
//
// A file that exists but cannot be read or parsed is an error; jaap refuses
// to start rather than silently ignore a broken config. Empty fields fall
// back to their defaults.
//
// # Sections
//
//	[storage]   backend = "file" | "memory" | "redis" | "sqlite" | "postgres" | "mysql" | "mongo"
//	[quote]     disabled, endpoint, model, api_key, timeout, refresh
//	[feedback]  bell, tap_sound_cmd, cycle_sound_cmd
//	[server]    listen
//	[log]       path, level
//
// Durations use Go syntax ("10s", "24h"). The quote API key may also come
// from GEMINI_API_KEY or API_KEY.
//
// # Path Expansion
//
// Paths starting with "~" are expanded against the user's home directory.
package config
