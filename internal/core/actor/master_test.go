package actor

import (
	"fmt"
	"testing"
	"time"

	adactor "github.com/berfenger/deconz2mqtt/internal/adapter/actor"
	"github.com/berfenger/deconz2mqtt/internal/adapter/registry"
	"github.com/berfenger/deconz2mqtt/internal/core/domain"
	"github.com/berfenger/deconz2mqtt/internal/util"
	"github.com/berfenger/deconz2mqtt/pkg/deconz"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func spawnTestMaster(t *testing.T, as *actor.ActorSystem, logger *zap.Logger) *actor.PID {

	cfg := util.LoadTestConfig()

	props := actor.PropsFromProducer(func() actor.Actor {
		return NewMasterOfPuppetsActor(cfg, func(mqttActor *actor.PID, es *eventstream.EventStream) *adactor.GatewayActor {
			return adactor.NewGatewayActor(&cfg, registry.NewMemory(), mqttActor, es, logger)
		}, func(es *eventstream.EventStream) *adactor.MQTTActor {
			return adactor.NewTestMQTTActor(&cfg, logger)
		}, logger)
	})
	pid, err := as.Root.SpawnNamed(props, "master")
	if err != nil {
		t.Fatal(err)
	}
	return pid
}

func testLogger(t *testing.T) *zap.Logger {
	logCfg := zap.NewDevelopmentConfig()
	logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	return zap.Must(logCfg.Build())
}

func TestMasterActorHealthCheck(t *testing.T) {

	as := actor.NewActorSystem()
	context := as.Root

	pid := spawnTestMaster(t, as, testLogger(t))

	time.Sleep(2 * time.Second)

	res, err := context.RequestFuture(pid, domain.ActorHealthRequest{}, 10*time.Second).Result()
	if err != nil {
		t.Error(err)
	}
	healthResp, ok := res.(domain.ActorHealthResponse)
	assert.True(t, ok)
	fmt.Printf("Health response: %+v\n", healthResp)
	assert.NotNil(t, healthResp)

	assert.True(t, healthResp.Healthy, "healthy is true")

	context.Stop(pid)

	as.Shutdown()
}

func TestMasterActorSensorRoundTrip(t *testing.T) {

	assert := assert.New(t)

	as := actor.NewActorSystem()
	context := as.Root

	pid := spawnTestMaster(t, as, testLogger(t))

	time.Sleep(1 * time.Second)

	// add a sensor
	res, err := context.RequestFuture(pid, domain.AddSensorRequest{
		Sensor: deconz.TestPresenceSensor(),
	}, 10*time.Second).Result()
	assert.NoError(err)
	addResp, ok := res.(domain.AddSensorResponse)
	assert.True(ok)
	assert.Equal("1", addResp.SensorId)
	assert.Contains(addResp.EntityUniqueIds, "00:15:8d:00:02:b4:6c:e5-01-0406-presence")

	// patch its state
	res, err = context.RequestFuture(pid, domain.UpdateSensorStateRequest{
		SensorId: addResp.SensorId,
		State:    deconz.SensorState{Presence: deconz.Bool(true)},
	}, 10*time.Second).Result()
	assert.NoError(err)
	updResp, ok := res.(domain.UpdateSensorStateResponse)
	assert.True(ok)
	assert.False(updResp.HasResponseError())

	// list it back
	res, err = context.RequestFuture(pid, domain.ListSensorsRequest{}, 10*time.Second).Result()
	assert.NoError(err)
	listResp, ok := res.(domain.ListSensorsResponse)
	assert.True(ok)
	assert.Len(listResp.Sensors, 1)
	assert.True(*listResp.Sensors[0].State.Presence)

	// unknown sensor id reports an error
	res, err = context.RequestFuture(pid, domain.UpdateSensorStateRequest{
		SensorId: "99",
		State:    deconz.SensorState{Presence: deconz.Bool(true)},
	}, 10*time.Second).Result()
	assert.NoError(err)
	updResp, ok = res.(domain.UpdateSensorStateResponse)
	assert.True(ok)
	assert.True(updResp.HasResponseError())

	context.Stop(pid)

	as.Shutdown()
}
