// Package api implements the HTTP client for the backend functions.
//
// The wire protocol is a single POST endpoint per function with JSON request
// bodies shaped as {action: string, ...action-specific fields} and response
// bodies shaped as {success: bool, ...payload}. Privileged requests carry the
// credential token in the body as admin_token, not in a header; the remote
// deployment keeps its functions stateless over plain POST bodies.
package api
