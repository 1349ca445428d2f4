// Package proxy implements roverproxy, the daemon mediating the upstream
// Mars Photos API for the dashboard.
//
// # Two-Phase Lookup
//
// A client asks for "the latest photos for rover X" with a single GET on the
// rover's lower-case path segment. The handler performs two chained upstream
// calls as one atomic unit of work:
//
//  1. Fetch the rover's manifest and read photo_manifest.max_date.
//  2. Fetch the photos for that date and return the body verbatim.
//
// From the caller's point of view there is one request, one response, and
// one error boundary around both phases.
//
// # Error Contract
//
// Every failure, from an unreachable upstream to a non-JSON body to a
// missing max_date or photos field, is logged server-side and reported to the client
// as HTTP 200 with the body {"error": "500 Internal Server Error"}. At the
// wire level there is deliberately no distinction between failure modes and
// no passthrough of upstream status codes; this is the contract the
// dashboard client is written against.
//
// # State
//
// Handlers are stateless and requests fully independent. There is no
// caching of upstream responses, no retry policy, and no session state.
package proxy
