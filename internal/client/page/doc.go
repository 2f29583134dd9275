// Package page models the single page the client controller drives.
//
// A Document is a flat set of elements addressed by id, each carrying a class
// list, text content, inner HTML and, for form fields, a value. The element
// ids form the contract between the controller and whatever presents the page
// (the terminal front end in this module): see NewDocument for the full set.
//
// Documents are not safe for concurrent use; the controller serialises access.
package page
