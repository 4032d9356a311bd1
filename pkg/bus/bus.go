package bus

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Config holds the MQTT broker connection parameters.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	ClientID string
}

// NewConn connects to the MQTT broker with exponential backoff and returns
// the shared client. The connection is closed when ctx is cancelled.
func NewConn(cfg *Config, ctx context.Context) (mqtt.Client, error) {
	addr := fmt.Sprintf("tcp://%s:%d", cfg.Host, cfg.Port)

	opts := mqtt.NewClientOptions()
	opts.AddBroker(addr)
	opts.SetUsername(cfg.User)
	opts.SetPassword(cfg.Password)
	opts.SetClientID(cfg.ClientID)
	opts.SetCleanSession(true)
	// while disconnected inbound decisions cannot be made; reconnect with
	// backoff instead of failing hard
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(30 * time.Second)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Printf("bus: connection lost: %v (reconnecting)", err)
	})

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 10 * time.Second
	maxRetries := 5

	var client mqtt.Client
	err := backoff.Retry(func() error {
		client = mqtt.NewClient(opts)
		if token := client.Connect(); token.Wait() && token.Error() != nil {
			log.Printf("bus: connect to %s failed: %v", addr, token.Error())
			return token.Error()
		}
		return nil
	}, backoff.WithMaxRetries(bo, uint64(maxRetries-1)))
	if err != nil {
		return nil, fmt.Errorf("could not establish MQTT connection after retries: %w", err)
	}

	log.Printf("bus: connected to broker at %s", addr)

	go func() {
		<-ctx.Done()
		client.Disconnect(250)
		log.Println("bus: connection closed")
	}()

	return client, nil
}

// CloseConn disconnects the shared client if still connected.
func CloseConn(client mqtt.Client) {
	if client.IsConnected() {
		client.Disconnect(250)
		log.Println("bus: connection closed")
	}
}
