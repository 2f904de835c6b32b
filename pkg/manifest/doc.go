/*
Package manifest is the construction interface for Docket projects.

It defines a declarative YAML/JSON form for projects and their bound
action sequences, and builds the corresponding domain values. Parsing and
validation stop here: once a manifest builds, the domain core only ever
sees already-typed Go values.
*/
package manifest
