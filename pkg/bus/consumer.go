package bus

import (
	"context"
	"log"
	"strings"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Handler processes one inbound message from a subscribed topic.
type Handler func(topic string, message mqtt.Message) error

// IConsumer is the inbound side of the telemetry bus.
type IConsumer interface {
	ConsumeMessage(ctx context.Context)
	SetHandler(handler Handler)
}

// qosFor maps topic classes to QoS. Alert/actuation events must survive a
// flaky link; raw telemetry is fire-and-forget.
func qosFor(topic string) byte {
	t := strings.TrimSpace(topic)
	if strings.HasPrefix(t, "elder/event/") {
		return 1
	}
	return 0
}

// Consumer subscribes to a single topic filter and dispatches to its handler.
type Consumer struct {
	client  mqtt.Client
	topic   string
	handler Handler
}

func NewConsumer(client mqtt.Client, topic string, handler Handler) *Consumer {
	return &Consumer{client: client, topic: topic, handler: handler}
}

func (c *Consumer) SetHandler(handler Handler) { c.handler = handler }

// ConsumeMessage subscribes and blocks until ctx is cancelled.
func (c *Consumer) ConsumeMessage(ctx context.Context) {
	token := c.client.Subscribe(c.topic, qosFor(c.topic), func(_ mqtt.Client, message mqtt.Message) {
		if c.handler == nil {
			log.Printf("bus: no handler set for topic %s", c.topic)
			return
		}
		if err := c.handler(message.Topic(), message); err != nil {
			log.Printf("bus: handler error on %s: %v", message.Topic(), err)
		}
	})
	if token.Wait() && token.Error() != nil {
		log.Printf("bus: subscribe %s failed: %v", c.topic, token.Error())
		return
	}
	log.Printf("bus: subscribed to %s", c.topic)

	<-ctx.Done()

	unsub := c.client.Unsubscribe(c.topic)
	unsub.Wait()
}

// MultiConsumer subscribes to several topic filters with one handler.
type MultiConsumer struct {
	client  mqtt.Client
	topics  []string
	handler Handler
}

func NewMultiConsumer(client mqtt.Client, topics []string, handler Handler) *MultiConsumer {
	return &MultiConsumer{client: client, topics: topics, handler: handler}
}

func (m *MultiConsumer) SetHandler(handler Handler) { m.handler = handler }

func (m *MultiConsumer) ConsumeMessage(ctx context.Context) {
	for _, topic := range m.topics {
		topic := topic
		token := m.client.Subscribe(topic, qosFor(topic), func(_ mqtt.Client, msg mqtt.Message) {
			if m.handler == nil {
				log.Printf("bus: no handler set for topic %s", topic)
				return
			}
			if err := m.handler(msg.Topic(), msg); err != nil {
				log.Printf("bus: handler error on %s: %v", msg.Topic(), err)
			}
		})
		token.Wait()
		if token.Error() != nil {
			log.Printf("bus: subscribe %s failed: %v", topic, token.Error())
		} else {
			log.Printf("bus: subscribed to %s", topic)
		}
	}

	<-ctx.Done()

	for _, topic := range m.topics {
		m.client.Unsubscribe(topic)
	}
}
