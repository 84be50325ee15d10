// Package middleware wraps a ports.ValueStore with extra behavior: encrypting snapshots
// at rest and keeping selected parameters out of storage.
package middleware
