package domain

import "fmt"

// Events published on the eventstream when entity state changes.

type EntityUpdateEventMixIn struct {
	ObjectId string
}

type EntityUpdateEvent interface {
	EntityUpdateEvent() string
	EntityObjectId() string
}

func (e EntityUpdateEventMixIn) EntityUpdateEvent() string {
	return fmt.Sprintf("%T", e)
}

func (e EntityUpdateEventMixIn) EntityObjectId() string {
	return e.ObjectId
}

// BinarySensorStateUpdateEvent carries the entity on/off state. A nil value
// means the underlying field vanished; subscribers skip publishing it.
type BinarySensorStateUpdateEvent struct {
	EntityUpdateEventMixIn
	Value *bool
}

// EntityAttributesUpdateEvent carries the full auxiliary attribute map.
type EntityAttributesUpdateEvent struct {
	EntityUpdateEventMixIn
	Attributes map[string]any
}

type BridgeStateUpdateEvent struct {
	EntityUpdateEventMixIn
	Value bool
}
