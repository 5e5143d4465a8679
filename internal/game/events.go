package game

import "hoverdash/internal/core"

// EventKind classifies a simulation event.
type EventKind int

const (
	EventPass EventKind = iota // craft cleared a gate
	EventCollectBonus
	EventCollectHazard
	EventCrash
)

// Event is a single occurrence raised by the lane or the resolver and
// consumed by the session in the same tick. Components never mutate
// each other directly; everything flows through these values.
type Event struct {
	Kind    EventKind
	Segment int       // index of the segment involved
	At      core.Vec3 // world position, used for particle bursts
}
