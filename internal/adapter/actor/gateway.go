package actor

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/berfenger/deconz2mqtt/internal/config"
	"github.com/berfenger/deconz2mqtt/internal/core/domain"
	"github.com/berfenger/deconz2mqtt/internal/core/port"
	"github.com/berfenger/deconz2mqtt/internal/core/service"
	"github.com/berfenger/deconz2mqtt/internal/util/actorutil"
	"github.com/berfenger/deconz2mqtt/pkg/deconz"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"go.uber.org/zap"
)

// GatewayActor owns the sensor store. Sensors enter through the startup
// snapshot or through AddSensorRequest, and every add runs discovery and
// announces the resulting entities over MQTT.
type GatewayActor struct {
	config      *config.Config
	behavior    actor.Behavior
	stash       *actorutil.Stash
	gateway     *deconz.Gateway
	discovery   *service.Discovery
	bridge      domain.Device
	mqttActor   *actor.PID
	eventStream *eventstream.EventStream
	logger      *zap.Logger
}

type snapshotLoaded struct {
	sensors []*deconz.Sensor
	err     error
}

func NewGatewayActor(config *config.Config, registry port.EntityRegistry, mqttActor *actor.PID,
	eventStream *eventstream.EventStream, logger *zap.Logger) *GatewayActor {
	actorLogger := actorutil.ActorLogger(domain.ACTOR_ID_GATEWAY, logger)
	bridge := domain.BridgeDevice(config.MQTT.BaseTopic)
	act := &GatewayActor{
		config:      config,
		behavior:    actor.NewBehavior(),
		stash:       &actorutil.Stash{},
		gateway:     deconz.NewGateway(actorLogger),
		discovery:   service.NewDiscovery(registry, bridge, actorLogger),
		bridge:      bridge,
		mqttActor:   mqttActor,
		eventStream: eventStream,
		logger:      actorLogger,
	}
	act.behavior.Become(act.StartingReceive)
	return act
}

func (state *GatewayActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *GatewayActor) StartingReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.logger.Debug("gateway@starting started")

		state.gateway.SubscribeSensorAdded(func(sensor *deconz.Sensor) {
			state.onSensorAdded(ctx, sensor)
		})
		state.gateway.SubscribeSensorUpdated(func(sensor *deconz.Sensor) {
			state.onSensorUpdated(ctx, sensor)
		})

		if state.config.Gateway.SnapshotFile == "" {
			state.behavior.Become(state.DefaultReceive)
			state.stash.UnstashAll(ctx)
			return
		}

		// load the sensor snapshot with a bounded wait
		file := state.config.Gateway.SnapshotFile
		actorutil.NewBackgroundTask(ctx, func() (*snapshotLoaded, error) {
			sensors, err := deconz.LoadSnapshot(file)
			if err != nil {
				return nil, err
			}
			return &snapshotLoaded{sensors: sensors}, nil
		}).WithTimeout(state.snapshotTimeout()).Recover(func(err error) snapshotLoaded {
			return snapshotLoaded{err: err}
		}).PipeTo(ctx.Self())

	case snapshotLoaded:
		if msg.err != nil {
			// a broken snapshot is fatal, let the supervisor retry
			state.logger.Error("gateway@starting snapshot load failed", zap.Error(msg.err))
			panic(msg.err)
		}
		state.logger.Info("gateway@starting snapshot loaded", zap.Int("sensors", len(msg.sensors)))
		for _, sensor := range msg.sensors {
			state.gateway.AddSensor(sensor)
		}
		state.behavior.Become(state.DefaultReceive)
		state.stash.UnstashAll(ctx)
	default:
		state.logger.Debug("gateway@starting stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *GatewayActor) DefaultReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthRequest:
		state.logger.Debug("gateway@default ActorHealthRequest")
		// respond health check request
		ctx.Respond(domain.ActorHealthResponse{
			Id:      domain.ACTOR_ID_GATEWAY,
			Healthy: true,
			State:   "idle",
		})
	case domain.AddSensorRequest:
		state.logger.Debug("gateway@default AddSensorRequest", zap.String("uniqueid", msg.Sensor.UniqueID))
		sensor := state.gateway.AddSensor(msg.Sensor)
		entities := state.discovery.EntitiesForSensor(sensor)
		uniqueIds := make([]string, 0, len(entities))
		for i := range entities {
			uniqueIds = append(uniqueIds, entities[i].UniqueID())
		}
		actorutil.ForRequest(msg).Respond(ctx, domain.AddSensorResponse{
			SensorId:        sensor.ID,
			EntityUniqueIds: uniqueIds,
		})
	case domain.UpdateSensorStateRequest:
		state.logger.Debug("gateway@default UpdateSensorStateRequest", zap.String("id", msg.SensorId))
		_, err := state.gateway.ApplyState(msg.SensorId, msg.State)
		actorutil.ForRequest(msg).Respond(ctx, domain.UpdateSensorStateResponse{
			ActorResponseMixIn: domain.ActorResponseMixIn{
				ResponseError: err,
			},
		})
	case domain.ListSensorsRequest:
		state.logger.Debug("gateway@default ListSensorsRequest")
		actorutil.ForRequest(msg).Respond(ctx, domain.ListSensorsResponse{
			Sensors: sortedSensors(state.gateway.Sensors()),
		})
	default:
		state.logger.Debug("gateway@default skip", zap.String("type", fmt.Sprintf("%T", msg)))
	}
}

// onSensorAdded runs inside the actor goroutine, triggered by the gateway
// store when a sensor is first added.
func (state *GatewayActor) onSensorAdded(ctx actor.Context, sensor *deconz.Sensor) {
	entities := state.discovery.EntitiesForSensor(sensor)
	if len(entities) == 0 {
		state.logger.Debug("gateway: sensor produced no entities", zap.String("type", string(sensor.Type)))
		return
	}
	if state.config.MQTT.HADiscoveryEnable {
		ctx.Send(state.mqttActor, domain.PublishDiscoveryRequest{
			BridgeDevice: state.bridge,
			Entities:     entities,
		})
	}
	state.publishEntityState(entities)
}

func (state *GatewayActor) onSensorUpdated(ctx actor.Context, sensor *deconz.Sensor) {
	state.publishEntityState(state.discovery.EntitiesForSensor(sensor))
}

func (state *GatewayActor) publishEntityState(entities []domain.BinarySensorEntity) {
	for i := range entities {
		entity := entities[i]
		state.eventStream.Publish(domain.BinarySensorStateUpdateEvent{
			EntityUpdateEventMixIn: domain.EntityUpdateEventMixIn{ObjectId: entity.ObjectID()},
			Value:                  entity.IsOn(),
		})
		if entity.Description.ExtraAttributes {
			state.eventStream.Publish(domain.EntityAttributesUpdateEvent{
				EntityUpdateEventMixIn: domain.EntityUpdateEventMixIn{ObjectId: entity.ObjectID()},
				Attributes:             entity.ExtraStateAttributes(),
			})
		}
	}
}

// sortedSensors orders the stored sensors by numeric resource ID, matching
// the deCONZ REST API listing order.
func sortedSensors(byID map[string]*deconz.Sensor) []*deconz.Sensor {
	sensors := make([]*deconz.Sensor, 0, len(byID))
	for _, s := range byID {
		sensors = append(sensors, s)
	}
	sort.Slice(sensors, func(i, j int) bool {
		a, _ := strconv.Atoi(sensors[i].ID)
		b, _ := strconv.Atoi(sensors[j].ID)
		return a < b
	})
	return sensors
}

func (state *GatewayActor) snapshotTimeout() time.Duration {
	if state.config.Gateway.LoadTimeoutSeconds > 0 {
		return time.Duration(state.config.Gateway.LoadTimeoutSeconds) * time.Second
	}
	return 10 * time.Second
}
