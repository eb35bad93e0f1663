package registry

import (
	"errors"
	"fmt"

	"github.com/berfenger/deconz2mqtt/internal/core/port"
)

var ErrUnknownEntity = errors.New("registry: unknown entity id")

type uniqueKey struct {
	entityDomain string
	platform     string
	uniqueID     string
}

// Memory is a process-local EntityRegistry. Not safe for concurrent use; the
// gateway actor owns it.
type Memory struct {
	byUnique map[uniqueKey]string
	byEntity map[string]uniqueKey
}

var _ port.EntityRegistry = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		byUnique: map[uniqueKey]string{},
		byEntity: map[string]uniqueKey{},
	}
}

func (m *Memory) EntityID(entityDomain, platform, uniqueID string) (string, bool) {
	id, ok := m.byUnique[uniqueKey{entityDomain, platform, uniqueID}]
	return id, ok
}

func (m *Memory) Register(entityDomain, platform, uniqueID, objectID string) string {
	key := uniqueKey{entityDomain, platform, uniqueID}
	if id, ok := m.byUnique[key]; ok {
		return id
	}
	entityID := fmt.Sprintf("%s.%s", entityDomain, objectID)
	m.byUnique[key] = entityID
	m.byEntity[entityID] = key
	return entityID
}

func (m *Memory) UpdateUniqueID(entityID, newUniqueID string) error {
	key, ok := m.byEntity[entityID]
	if !ok {
		return ErrUnknownEntity
	}
	delete(m.byUnique, key)
	key.uniqueID = newUniqueID
	m.byUnique[key] = entityID
	m.byEntity[entityID] = key
	return nil
}
