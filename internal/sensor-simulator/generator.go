package sensor_simulator

import (
	"math/rand"
	"sync"
	"time"

	"github.com/eldersafe/gateway/internal/model"
)

// MotionGenerator produces wearable samples: ~1 g baseline noise with
// occasional impact spikes, like an MPU6050 worn on a belt.
type MotionGenerator struct {
	mu        sync.Mutex
	rng       *rand.Rand
	spikeProb float64 // probability of an impact spike per sample
	spikeG    float64 // magnitude of an injected spike
	forced    int     // spikes queued by ForceSpike
}

func NewMotionGenerator(spikeProb, spikeG float64) *MotionGenerator {
	if spikeG <= 0 {
		spikeG = 3.5
	}
	return &MotionGenerator{
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		spikeProb: spikeProb,
		spikeG:    spikeG,
	}
}

// ForceSpike queues one guaranteed impact spike, used for demos and tests.
func (g *MotionGenerator) ForceSpike() {
	g.mu.Lock()
	g.forced++
	g.mu.Unlock()
}

// Next returns the next sample.
func (g *MotionGenerator) Next(sourceID string) model.MotionData {
	g.mu.Lock()
	defer g.mu.Unlock()

	gf := 0.95 + g.rng.Float64()*0.1 // resting magnitude
	mic := 80 + g.rng.Float64()*60

	spike := g.forced > 0 || g.rng.Float64() < g.spikeProb
	if g.forced > 0 {
		g.forced--
	}
	if spike {
		gf = g.spikeG + g.rng.Float64()
		mic = 500 + g.rng.Float64()*200 // a fall is loud
	}

	return model.MotionData{GForce: gf, Mic: mic, SourceID: sourceID}
}

var emotions = []string{"Neutral", "Happy", "Sad", "Surprised", "No Face"}

// VisionGenerator produces periodic camera reports with rotating expressions
// and, rarely, a fall report carrying a confidence score.
type VisionGenerator struct {
	mu       sync.Mutex
	rng      *rand.Rand
	fallProb float64
	idx      int
}

func NewVisionGenerator(fallProb float64) *VisionGenerator {
	return &VisionGenerator{
		rng:      rand.New(rand.NewSource(time.Now().UnixNano() + 1)),
		fallProb: fallProb,
	}
}

func (g *VisionGenerator) Next() model.VisionReport {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.idx = (g.idx + 1) % len(emotions)
	report := model.VisionReport{Emotions: emotions[g.idx]}
	if g.rng.Float64() < g.fallProb {
		report.FallDetected = true
		conf := 0.3 + g.rng.Float64()*0.7
		report.Confidence = &conf
	}
	return report
}
