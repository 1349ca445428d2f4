// Package photos implements the dashboard's HTTP client for the roverproxy
// API.
//
// One call, FetchLatest, maps one rover selection to one GET against the
// proxy and derives everything the view needs from the response: the ordered
// image URL list and the attribute set taken from the first photo's metadata.
// Both travel together in a single Result so a successful fetch can only
// ever update them as a pair.
//
// Failures are terminal for the triggering interaction. A network error, a
// non-JSON body, the proxy's in-body error shape, and an empty photos array
// all produce an error and no Result; the caller leaves the prior snapshot
// untouched and the user re-triggers the selection if they want a retry.
package photos
