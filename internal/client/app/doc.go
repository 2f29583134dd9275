// Package app is the controller of the rental tracker client.
//
// App owns the page model and the two pieces of UI state (the current user
// and the current section), turns user events into API calls and renders the
// results back into the page. Page mutations happen under a single mutex so
// that delayed callbacks, such as hiding a success message, never race with
// event handlers. API calls run outside the lock.
package app
