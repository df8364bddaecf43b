// Package entity contains the pure domain objects of the platform.
package entity

// Record state values used by soft-deletable rows.
const (
	RecordStateActive   = "A"
	RecordStateInactive = "I"
)
