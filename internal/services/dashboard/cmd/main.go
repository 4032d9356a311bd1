package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

/************* MODELS (DTOs toward the dashboard UI) *************/

type StatusDTO struct {
	Temperature   string   `json:"temperature"`
	Humidity      string   `json:"humidity"`
	SmokeStatus   string   `json:"smoke_status"`
	CriticalAlert string   `json:"critical_alert"`
	GForceLatest  float64  `json:"g_force_latest"`
	Expression    string   `json:"expression"`
	Confidence    *float64 `json:"confidence,omitempty"`
	AlertPhase    string   `json:"alert_phase"`
}

type AlertDTO struct {
	Active bool   `json:"active"`
	Reason string `json:"reason,omitempty"`
	Time   string `json:"time"`
}

type PointDTO struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

type seriesGroup struct{ temp, hum, g, fall []PointDTO }

type Payload struct {
	Status     StatusDTO  `json:"status"`
	Alerts     []AlertDTO `json:"alerts"`
	TempData   []PointDTO `json:"temp_data"`
	HumData    []PointDTO `json:"hum_data"`
	GForceData []PointDTO `json:"g_force_data"`
	FallData   []PointDTO `json:"fall_data"`
}

/************* UPSTREAM REST CLIENT *************/

type Upstream struct {
	http *http.Client
}

func NewUpstream(timeoutMs int) *Upstream {
	return &Upstream{http: &http.Client{Timeout: time.Duration(timeoutMs) * time.Millisecond}}
}

func (u *Upstream) getJSON(ctx context.Context, rawURL string, out any) error {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	res, err := u.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("GET %s -> %s", rawURL, res.Status)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (u *Upstream) GetStatus(ctx context.Context, base string) (StatusDTO, error) {
	var out StatusDTO
	err := u.getJSON(ctx, base+"/status", &out)
	return out, err
}

func (u *Upstream) GetAlerts(ctx context.Context, base string) ([]AlertDTO, error) {
	var out []AlertDTO
	if err := u.getJSON(ctx, base+"/alerts/recent", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Upstream) GetSeries(ctx context.Context, base, measurement, field string) ([]PointDTO, error) {
	var out []PointDTO
	q := url.Values{"measurement": {measurement}, "field": {field}}
	if err := u.getJSON(ctx, base+"/series/recent?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

/************* MAIN *************/

var (
	statusCB *gobreaker.CircuitBreaker
	alertsCB *gobreaker.CircuitBreaker
	seriesCB *gobreaker.CircuitBreaker

	lastGoodAlerts alertsCache
)

// alertsCache keeps the last successful alerts response; request handlers run
// concurrently so access is mutex-guarded.
type alertsCache struct {
	mu   sync.Mutex
	last []AlertDTO
}

func (c *alertsCache) put(al []AlertDTO) {
	c.mu.Lock()
	c.last = al
	c.mu.Unlock()
}

func (c *alertsCache) get() ([]AlertDTO, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.last != nil
}

func mkCB(name string, fails, openMs, intervalMs int) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     name,
		Interval: time.Duration(intervalMs) * time.Millisecond,
		Timeout:  time.Duration(openMs) * time.Millisecond,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= uint32(fails)
		},
	})
}

func main() {
	cfg := loadConfig()

	statusCB = mkCB("fusion-status", cfg.CBFails, cfg.CBOpenMs, cfg.CBIntervalMs)
	alertsCB = mkCB("persistence-alerts", cfg.CBFails, cfg.CBOpenMs, cfg.CBIntervalMs)
	seriesCB = mkCB("persistence-series", cfg.CBFails, cfg.CBOpenMs, cfg.CBIntervalMs)

	http.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	http.HandleFunc("/dashboard/data", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx, cancel := context.WithTimeout(r.Context(), time.Duration(cfg.TimeoutMs)*time.Millisecond)
		defer cancel()

		up := NewUpstream(cfg.TimeoutMs)
		resp := Payload{
			Alerts:     []AlertDTO{},
			TempData:   []PointDTO{},
			HumData:    []PointDTO{},
			GForceData: []PointDTO{},
			FallData:   []PointDTO{},
		}

		// === (1) live status, breaker-guarded ===
		if res, err := statusCB.Execute(func() (any, error) {
			return up.GetStatus(ctx, cfg.FusionURL)
		}); err == nil {
			resp.Status = res.(StatusDTO)
		} else {
			// best effort: absent markers instead of an error page
			resp.Status = StatusDTO{Temperature: "N/A", Humidity: "N/A", SmokeStatus: "SMOKE_OK", CriticalAlert: "ALERT_OK"}
		}

		// === (2) recent alerts with last-good cache ===
		if res, err := alertsCB.Execute(func() (any, error) {
			al, err := up.GetAlerts(ctx, cfg.PersistenceURL)
			if err != nil {
				return nil, err
			}
			return al, nil
		}); err == nil {
			resp.Alerts = res.([]AlertDTO)
			lastGoodAlerts.put(resp.Alerts)
		} else if cached, ok := lastGoodAlerts.get(); ok {
			resp.Alerts = cached
		}

		// === (3) chart series, one breaker for the whole group ===
		if res, err := seriesCB.Execute(func() (any, error) {
			var gr seriesGroup
			var err error
			if gr.temp, err = up.GetSeries(ctx, cfg.PersistenceURL, "environment", "temperature"); err != nil {
				return nil, err
			}
			if gr.hum, err = up.GetSeries(ctx, cfg.PersistenceURL, "environment", "humidity"); err != nil {
				return nil, err
			}
			if gr.g, err = up.GetSeries(ctx, cfg.PersistenceURL, "motion", "g_force"); err != nil {
				return nil, err
			}
			if gr.fall, err = up.GetSeries(ctx, cfg.PersistenceURL, "camera", "fall_detected"); err != nil {
				return nil, err
			}
			return gr, nil
		}); err == nil {
			gr := res.(seriesGroup)
			resp.TempData = gr.temp
			resp.HumData = gr.hum
			resp.GForceData = gr.g
			resp.FallData = gr.fall
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)

		log.Printf("GET /dashboard/data [%dms] cb[status]=%v cb[alerts]=%v cb[series]=%v alerts=%d",
			time.Since(start).Milliseconds(), statusCB.State(), alertsCB.State(), seriesCB.State(), len(resp.Alerts))
	})

	addr := ":" + cfg.Port
	log.Printf("dashboard listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}
