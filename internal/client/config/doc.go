// Package config loads runtime configuration for the semant client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend API base URL
//	-t int      request timeout (seconds)
//	-r float    outbound requests per second
//	-d string   local store DSN
//	-l string   log format (text|zap)
//
// # JSON schema
//
// Durations accept strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:8000/api",
//	  "request_timeout": "10s",
//	  "rate_limit": 10,
//	  "database_dsn": "semant.db",
//	  "log_format": "text"
//	}
package config
