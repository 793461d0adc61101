// Package pkgblob stores and retrieves upload artifacts by folder and file name.
//
// Backends are selected by storage.blob.driver: the local filesystem, S3 (or any
// S3-compatible endpoint), Google Cloud Storage and Azure Blob Storage. A missing
// object is always reported as pkgerror.ErrNotFound.
package pkgblob
