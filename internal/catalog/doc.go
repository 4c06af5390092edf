// Package catalog loads the debloat catalog: the list of known Android
// packages, which vendor list each belongs to, and how safe it is to remove.
//
// A Catalog is a plain value keyed by package id. It is owned by whoever loads
// it; nothing in this package keeps a process-wide copy.
//
// The bundled catalog is embedded at build time. A user catalog can be given
// as a JSON or YAML file; the format is sniffed from the content rather than
// the file extension.
package catalog
