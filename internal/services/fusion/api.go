package fusion

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// statusPayload is the status API response: the shared view plus the
// emergency singleton. Always best-effort, never an error page.
type statusPayload struct {
	Snapshot
	AlertPhase  string `json:"alert_phase"`
	ActivatedAt string `json:"activated_at,omitempty"`
}

// NewMux builds the status HTTP surface of the fusion engine.
func NewMux(svc *Service, reg *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/status", func(w http.ResponseWriter, _ *http.Request) {
		state := svc.State()
		p := statusPayload{
			Snapshot:   svc.View().Snapshot(),
			AlertPhase: string(state.Phase),
		}
		if !state.ActivatedAt.IsZero() {
			p.ActivatedAt = state.ActivatedAt.UTC().Format(time.RFC3339)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(p)
	})

	if reg != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	return mux
}
