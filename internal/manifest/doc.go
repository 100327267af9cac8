// Package manifest loads plugin spec files: YAML documents that describe a
// plugin (name, slug, description, author, version, readme header) so a
// scaffold run can be repeated without retyping flags. Files are checked
// against an embedded JSON Schema before they are decoded.
package manifest
