// Package pkgrouter is the HTTP layer shared by every module.
//
// Handlers return a payload or an error. Payloads are wrapped in the JSON
// envelope {message, data} unless they implement Raw, in which case they
// stream their own body (the CSV download endpoint uses this). Errors are
// mapped through pkgerror to a status code and an optional field map.
//
// Every route runs behind panic recovery and request logging, with the
// correlation ID carried in the request context.
package pkgrouter
