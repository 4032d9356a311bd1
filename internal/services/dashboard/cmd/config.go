package main

import (
	"os"
	"strconv"
)

type Config struct {
	Port      string
	TimeoutMs int

	// Upstream services
	FusionURL      string // e.g. http://fusion:5000
	PersistenceURL string // e.g. http://persistence:5001

	// Circuit breaker tuning
	CBFails      int
	CBOpenMs     int
	CBIntervalMs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func loadConfig() Config {
	return Config{
		Port:      getenv("PORT", "5009"),
		TimeoutMs: getenvInt("TIMEOUT_MS", 3000),

		FusionURL:      getenv("FUSION_URL", "http://localhost:5000"),
		PersistenceURL: getenv("PERSISTENCE_URL", "http://localhost:5001"),

		CBFails:      getenvInt("CB_FAILS", 3),
		CBOpenMs:     getenvInt("CB_OPEN_MS", 10000),
		CBIntervalMs: getenvInt("CB_INTERVAL_MS", 60000),
	}
}
