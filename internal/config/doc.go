// Package config manages user-level settings stored at ~/.wpscaffold/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default destination directory and the readme header fields stamped into
// every generated plugin.
package config
