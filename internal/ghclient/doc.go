// Package ghclient is the repository tool client: a fixed catalog of read
// operations against the GitHub REST API.
//
// Contract:
//   - Every operation is a single authenticated GET; no retries, caching,
//     pagination beyond the first page, or rate-limit handling.
//   - Transport errors (including non-2xx payloads) propagate unchanged to the
//     caller; converting them into tool results is the runner's job.
//   - ParseRepoURL is the one place repository URLs are interpreted; malformed
//     input surfaces as ErrInvalidRepoRef rather than a positional fault.
package ghclient
