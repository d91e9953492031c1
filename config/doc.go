// Package config loads and validates menagerie configuration.
//
// Configuration is merged from defaults, yaml config files, MENAGERIE_-prefixed
// environment variables, and explicitly set CLI flags, in increasing order of
// precedence. The resulting struct is checked with go-playground/validator
// before use.
package config
