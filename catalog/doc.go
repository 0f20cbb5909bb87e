// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package catalog holds the read-only candidate catalog, loaded from a
// JSON file (CANDIDATES_FILE) or falling back to a built-in sample
// list. Vote creation validates candidate ids against it.
package catalog
