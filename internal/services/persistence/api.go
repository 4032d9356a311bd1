package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
)

// AlertRecord is the history entry exposed to the dashboard.
type AlertRecord struct {
	Active bool   `json:"active"`
	Reason string `json:"reason,omitempty"`
	Time   string `json:"time"` // RFC3339
}

// SeriesPoint is one chartable sample.
type SeriesPoint struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

type queryParams struct {
	Minutes   int
	Limit     int
	TimeoutMS int
}

func parseQuery(r *http.Request, defMin, defLim, defTOms int) queryParams {
	q := r.URL.Query()
	get := func(k string, def, min, max int) int {
		if v := strings.TrimSpace(q.Get(k)); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				if n < min {
					return min
				}
				if max > 0 && n > max {
					return max
				}
				return n
			}
		}
		return def
	}
	return queryParams{
		Minutes:   get("minutes", defMin, 1, 7*24*60),
		Limit:     get("limit", defLim, 1, 500),
		TimeoutMS: get("timeout_ms", defTOms, 200, 5000),
	}
}

func buildFlux(bucket, measurement, field string, minutes, limit int) string {
	return fmt.Sprintf(`
from(bucket: %q)
  |> range(start: -%dm)
  |> filter(fn: (r) => r._measurement == %q)
  |> filter(fn: (r) => r._field == %q)
  |> keep(columns: ["_time","_value"])
  |> sort(columns: ["_time"], desc: true)
  |> limit(n:%d)
`, bucket, minutes, measurement, field, limit)
}

// API serves read endpoints over the stored telemetry.
type API struct {
	influx influxdb2.Client
	org    string
	bucket string
	writer *Writer
}

func NewAPI(influx influxdb2.Client, org, bucket string, writer *Writer) *API {
	return &API{influx: influx, org: org, bucket: bucket, writer: writer}
}

// Mux builds the HTTP surface: recent alerts, chartable series, health.
func (a *API) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("/readyz", a.handleReadyz)
	mux.HandleFunc("/alerts/recent", a.handleAlertsRecent)
	mux.HandleFunc("/series/recent", a.handleSeriesRecent)
	return mux
}

func (a *API) handleAlertsRecent(w http.ResponseWriter, r *http.Request) {
	p := parseQuery(r, 24*60, 50, 2000)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(p.TimeoutMS)*time.Millisecond)
	defer cancel()

	res, err := a.influx.QueryAPI(a.org).Query(ctx, buildFlux(a.bucket, "alert", "active", p.Minutes, p.Limit))
	if err != nil {
		// best effort: an empty list, never an error page
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Error", "influx-query-error")
		_, _ = w.Write([]byte("[]"))
		return
	}
	defer func() { _ = res.Close() }()

	out := make([]AlertRecord, 0, p.Limit)
	for res.Next() {
		rec := res.Record()
		out = append(out, AlertRecord{
			Active: toFloat(rec.Value()) != 0,
			Time:   rec.Time().UTC().Format(time.RFC3339),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// handleSeriesRecent serves one measurement/field pair as a series, for the
// dashboard charts (temperature, humidity, g_force, fall_detected).
func (a *API) handleSeriesRecent(w http.ResponseWriter, r *http.Request) {
	p := parseQuery(r, 24*60, 200, 2000)

	measurement := strings.TrimSpace(r.URL.Query().Get("measurement"))
	field := strings.TrimSpace(r.URL.Query().Get("field"))
	if !allowedSeries(measurement, field) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(p.TimeoutMS)*time.Millisecond)
	defer cancel()

	res, err := a.influx.QueryAPI(a.org).Query(ctx, buildFlux(a.bucket, measurement, field, p.Minutes, p.Limit))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Error", "influx-query-error")
		_, _ = w.Write([]byte("[]"))
		return
	}
	defer func() { _ = res.Close() }()

	out := make([]SeriesPoint, 0, p.Limit)
	for res.Next() {
		rec := res.Record()
		out = append(out, SeriesPoint{
			Time:  rec.Time().UTC().Format(time.RFC3339),
			Value: toFloat(rec.Value()),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// allowedSeries whitelists the measurement/field pairs the writer produces.
func allowedSeries(measurement, field string) bool {
	switch measurement + "/" + field {
	case "environment/temperature",
		"environment/humidity",
		"environment/smoke",
		"motion/g_force",
		"motion/mic",
		"camera/fall_detected",
		"camera/confidence":
		return true
	}
	return false
}

func (a *API) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok"))
}

// readyz fails when Influx writes have errored recently.
func (a *API) handleReadyz(w http.ResponseWriter, _ *http.Request) {
	if a.writer.LastErrorAge() < 30*time.Second {
		http.Error(w, "influx writes failing", http.StatusServiceUnavailable)
		return
	}
	_, _ = w.Write([]byte("ready"))
}

func toFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int64:
		return float64(t)
	case int:
		return float64(t)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
	}
	return 0
}
