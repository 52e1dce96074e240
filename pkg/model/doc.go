// Package model declares the backing data models resources are derived from.
// A Model carries its namespace-qualified type, the attribute casts in
// declaration order, and the relations it exposes. Relations are declared
// explicitly (name, kind, target model type and optional foreign key) so field
// synthesis never has to guess accessor methods at runtime.
package model
