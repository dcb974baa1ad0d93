// Package kernel contains shared value objects used across all aggregates:
// UUID identifiers and Price amounts. Both are immutable, validated at
// construction, and safe for concurrent use. Zero values are invalid and
// rejected by Validate, which keeps unconstructed identifiers and amounts
// from leaking into aggregates.
package kernel
