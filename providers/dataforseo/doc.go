// Package dataforseo is a minimal client for the DataForSEO v3 REST API,
// covering the Google Ads live search-volume endpoint. Requests use HTTP
// basic authentication with the account login/password pair.
//
// DataForSEO reports failures in two layers: the HTTP status of the call
// itself, and an API-level status_code inside the response body (20000 means
// success). The client surfaces transport and non-2xx failures as errors and
// returns the decoded body for everything else, leaving the API-level status
// check to the caller.
package dataforseo
