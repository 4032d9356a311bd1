package bus

import (
	"fmt"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// IPublisher is the outbound side of the telemetry bus.
type IPublisher interface {
	PublishMessage(payload []byte) error
	PublishTo(topic string, qos byte, retain bool, payload []byte) error
	Close()
}

// Publisher publishes to a fixed default topic over the shared client.
type Publisher struct {
	client mqtt.Client
	topic  string
}

func NewPublisher(client mqtt.Client, topic string) *Publisher {
	return &Publisher{client: client, topic: topic}
}

// PublishMessage publishes to the default topic at QoS derived from the topic class.
func (p *Publisher) PublishMessage(payload []byte) error {
	return p.PublishTo(p.topic, qosFor(p.topic), false, payload)
}

// PublishTo publishes to an explicit topic with explicit QoS/retain.
func (p *Publisher) PublishTo(topic string, qos byte, retain bool, payload []byte) error {
	token := p.client.Publish(topic, qos, retain, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, token.Error())
	}
	return nil
}

// Close disconnects the underlying client.
func (p *Publisher) Close() {
	if p.client.IsConnected() {
		p.client.Disconnect(250)
		log.Println("bus: publisher client disconnected")
	}
}
