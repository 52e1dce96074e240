// Package openapi exports resources as OpenAPI 3 component schemas. Each
// resource becomes an object schema whose properties mirror its fields;
// belongs-to fields carry the x-relationships extension so form generators can
// render them as relation pickers.
package openapi
