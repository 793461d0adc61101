// Package pkgroutine runs groups of goroutines with a concurrency cap.
//
// A Manager joins the errors returned by its group and converts panics into
// errors. The upload flow runs its sort and diff stages on one, and the app
// uses another to close resources in parallel on shutdown.
package pkgroutine
