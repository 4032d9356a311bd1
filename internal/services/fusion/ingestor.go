package fusion

import (
	"encoding/json"
	"log"
	"time"

	"github.com/eldersafe/gateway/internal/model"
	"github.com/eldersafe/gateway/pkg/bus"
)

// Ingestor validates inbound wearable motion messages and applies the primary
// trigger test. Every raw payload is relayed to the cloud topic before any
// decision work, regardless of the trigger outcome.
type Ingestor struct {
	gForceLimit float64
	relay       bus.IPublisher
	relayTopic  string
}

func NewIngestor(gForceLimit float64, relay bus.IPublisher, relayTopic string) *Ingestor {
	return &Ingestor{gForceLimit: gForceLimit, relay: relay, relayTopic: relayTopic}
}

// Ingest parses one motion payload. Malformed or missing fields coerce to 0
// with a logged warning; the pipeline never drops a sample.
func (i *Ingestor) Ingest(payload []byte) (model.MotionData, bool) {
	if i.relay != nil {
		if err := i.relay.PublishTo(i.relayTopic, 0, false, payload); err != nil {
			log.Printf("ingestor: cloud relay error: %v", err)
		}
	}

	var md model.MotionData
	if err := json.Unmarshal(payload, &md); err != nil {
		log.Printf("ingestor: malformed motion payload (%v), substituting zeros", err)
		md = model.MotionData{}
	}
	md.ReceivedAt = time.Now()

	primary := md.GForce > i.gForceLimit
	if primary {
		log.Printf("ingestor: high impact g_force=%.2f > limit=%.2f", md.GForce, i.gForceLimit)
	}
	return md, primary
}
