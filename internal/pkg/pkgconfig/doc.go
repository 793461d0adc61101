// Package pkgconfig reads typed settings from config.yaml with environment
// overrides.
//
// Keys are dotted paths (storage.blob.driver); the matching environment
// variable upper-cases the path and swaps dots for underscores
// (STORAGE_BLOB_DRIVER). Binary values are base64 encoded.
package pkgconfig
