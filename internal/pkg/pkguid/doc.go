// Package pkguid generates the identifiers used by the upload service.
//
// Upload folders are named by time-ordered UUID strings (StringID) and upload
// records get Snowflake primary keys (NumberID). The Func adapters turn plain
// functions into generators, which keeps tests deterministic.
package pkguid
