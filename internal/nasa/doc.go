// Package nasa defines the wire types of the upstream Mars Photos API and a
// client for its two relevant endpoints.
//
// The dashboard consumes a narrow slice of the upstream schema: the manifest's
// max_date, and each photo's img_src, earth_date, and rover metadata. The
// types here mirror exactly that slice; everything else upstream returns is
// carried opaquely.
//
// The Client deliberately does not inspect HTTP status codes. The wire
// contract treats any body lacking the expected field as invalid data,
// whether it arrived with 200 or 4xx, and the proxy collapses every failure
// into one generic error shape. Upstream auth failures (missing or bad
// api_key) therefore surface the same way as an unreachable host.
package nasa
