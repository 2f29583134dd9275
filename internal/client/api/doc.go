// Package api is the HTTP client of the rental tracker backend.
//
// # Overview
//
// Client is the single point of contact with the backend. Every call goes
// through one request path that:
//  1. joins the server URL, the fixed base path (/api/v1) and the endpoint;
//  2. sends Content-Type: application/json (callers may add or override
//     headers) and, when a token is held, Authorization: Bearer <token>;
//  3. decodes the body as JSON regardless of the status code;
//  4. turns a non-2xx status into a *RequestError carrying the server's
//     "error" field, or "HTTP error! status: <code>" when there is none.
//
// Failures of any kind are logged before being returned. There are no
// retries and no caching.
//
// # Tokens
//
// The bearer token lives in memory and in a TokenStore. Login stores the
// returned token; Logout clears it locally even when the remote call fails.
//
// # Errors
//
// All backend rejections match ErrRequestFailed with errors.Is. Transport and
// decoding failures are returned wrapped as they are.
package api
