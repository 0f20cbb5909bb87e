// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation and validation helpers.

  - GenerateID: random hex identifiers
  - GenerateVoterToken: URL-safe random tokens identifying a participant
  - ValidateAdminKey: constant-time check of the X-Admin-Key header
  - HashIP: salted one-way hash for IP privacy

The admin key is a single pre-shared secret (ADMIN_KEY); there is no
per-resource key derivation.
*/
package auth
