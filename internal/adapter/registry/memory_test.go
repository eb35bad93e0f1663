package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterIsIdempotent(t *testing.T) {

	assert := assert.New(t)

	reg := NewMemory()

	first := reg.Register("binary_sensor", "deconz", "aa:bb-01-presence", "aabb_01_presence")
	second := reg.Register("binary_sensor", "deconz", "aa:bb-01-presence", "aabb_01_presence")

	assert.Equal("binary_sensor.aabb_01_presence", first)
	assert.Equal(first, second, "same unique id keeps its entity id")
}

func TestUpdateUniqueID(t *testing.T) {

	assert := assert.New(t)

	reg := NewMemory()
	entityID := reg.Register("binary_sensor", "deconz", "aa:bb", "aabb_presence")

	err := reg.UpdateUniqueID(entityID, "aa:bb-presence")
	assert.NoError(err)

	_, ok := reg.EntityID("binary_sensor", "deconz", "aa:bb")
	assert.False(ok, "old unique id released")

	id, ok := reg.EntityID("binary_sensor", "deconz", "aa:bb-presence")
	assert.True(ok)
	assert.Equal(entityID, id, "entity id unchanged")

	assert.ErrorIs(reg.UpdateUniqueID("binary_sensor.missing", "x"), ErrUnknownEntity)
}
