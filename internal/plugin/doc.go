// Package plugin models the input of a scaffold run: the plugin spec, the
// slug rules it must satisfy, and the PHP identifiers derived from the slug.
// Everything here is pure; no function touches the filesystem.
package plugin
