// Package alma wraps the Alma API gateway.
//
// The Client is constructed once with the API key, regional base URL, and
// request timeout; the credential is attached to every request as an
// "apikey" Authorization header and the client holds no other mutable
// state, so it is safe to reuse for every lookup of a run.
//
// # Lookups
//
// Resolve implements the reconcile.Resolver contract: one GET against the
// Primo Search endpoint per call, with every outcome folded into the
// three-way Resolution. Timeouts, transport failures, unexpected statuses,
// malformed bodies, and ambiguous (multi-match) responses all become
// StatusError with a detail string; a zero-match response (including the
// service's HTTP 400 "no results" answer) becomes StatusNotFound.
//
// # Digital Titles
//
// FetchDigitalTitles pages through the bibs endpoint for every
// digital-resource record, used by the fetch-titles export command.
package alma
