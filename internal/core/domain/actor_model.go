package domain

import (
	"github.com/berfenger/deconz2mqtt/pkg/deconz"

	"github.com/asynkron/protoactor-go/actor"
)

const (
	ACTOR_ID_MASTER  = "master"
	ACTOR_ID_GATEWAY = "gateway"
	ACTOR_ID_MQTT    = "mqtt"
)

type ActorRef actor.PID

type ActorRequestMixIn struct {
	ReplyToRef *ActorRef
}

type ActorRequest interface {
	ReplyTo() *ActorRef
}

func (r ActorRequestMixIn) ReplyTo() *ActorRef {
	return r.ReplyToRef
}

type ActorResponseMixIn struct {
	ResponseError error
}

func (r ActorResponseMixIn) GetResponseError() error {
	return r.ResponseError
}

func (r ActorResponseMixIn) HasResponseError() bool {
	return r.ResponseError != nil
}

type ActorResponse interface {
	GetResponseError() error
	HasResponseError() bool
}

type ActorHealthRequest struct {
	ActorRequestMixIn
}

type ActorHealthResponse struct {
	ActorResponseMixIn
	Id      string
	Healthy bool
	State   string
}

// AddSensorRequest injects a sensor into the gateway store, triggering
// discovery for it.
type AddSensorRequest struct {
	ActorRequestMixIn
	Sensor *deconz.Sensor
}

type AddSensorResponse struct {
	ActorResponseMixIn
	SensorId        string
	EntityUniqueIds []string
}

// UpdateSensorStateRequest merges a state patch into a stored sensor.
type UpdateSensorStateRequest struct {
	ActorRequestMixIn
	SensorId string
	State    deconz.SensorState
}

type UpdateSensorStateResponse struct {
	ActorResponseMixIn
}

type ListSensorsRequest struct {
	ActorRequestMixIn
}

type ListSensorsResponse struct {
	ActorResponseMixIn
	Sensors []*deconz.Sensor
}

// PublishDiscoveryRequest asks the MQTT actor to publish retained HA
// discovery configs for the given entities.
type PublishDiscoveryRequest struct {
	ActorRequestMixIn
	BridgeDevice Device
	Entities     []BinarySensorEntity
}

type PublishDiscoveryResponse struct {
	ActorResponseMixIn
}

// PublishMessageRequest publishes a raw payload on a topic.
type PublishMessageRequest struct {
	ActorRequestMixIn
	Topic   string
	Payload string
	Retain  bool
}

type PublishMessageResponse struct {
	ActorResponseMixIn
}
