// Package config reads process configuration from the environment. Command
// line flags take their defaults from here, so a flag always wins over the
// matching variable.
package config
