// Package config manages user-level settings stored at ~/.exgen/config.yaml.
// Values can also come from EXGEN_* environment variables; command flags
// take precedence over both.
package config
