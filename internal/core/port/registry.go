package port

// EntityRegistry is the host platform's entity-identifier index, injected
// into the discovery layer so unique-ID migrations never touch a global.
type EntityRegistry interface {
	// EntityID resolves a (domain, platform, unique ID) triple to the entity
	// ID registered for it.
	EntityID(entityDomain, platform, uniqueID string) (string, bool)
	// Register assigns an entity ID to a unique ID and returns it. Already
	// registered unique IDs keep their entity ID.
	Register(entityDomain, platform, uniqueID, objectID string) string
	// UpdateUniqueID moves an existing entity to a new unique ID.
	UpdateUniqueID(entityID, newUniqueID string) error
}
