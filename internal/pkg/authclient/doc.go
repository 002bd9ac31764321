// Package authclient verifies bearer tokens against the external token
// authority.
//
// It includes:
//   - Bearer token extraction from the Authorization header.
//   - An HTTP client that forwards the token to the authority and decodes
//     the claims it returns.
//   - Context helpers for storing and retrieving authenticated claims.
package authclient
