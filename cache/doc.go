// Package cache implements an on-disk graph cache keyed by
// geographic tile. Entries are rejected on write if empty and
// rejected on read if stale or empty, so a reader never has to distinguish
// "no file" from "unusable file" — both come back as a cache miss.
//
// The cache is single-writer per key; concurrent readers tolerate a
// partially written entry by treating it as absent. There is no
// ambient or global cache instance — Config (directory, TTL) is a
// constructor parameter.
package cache
