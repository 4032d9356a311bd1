package main

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	MQTTHost     string
	MQTTPort     int
	MQTTUser     string
	MQTTPassword string

	MotionTopic string
	CamTopic    string
	EnvTopic    string
	CloudTopic  string
	AlertTopic  string

	GForceLimit     float64
	ConfThreshold   float64
	HoldDuration    time.Duration
	VisionWait      time.Duration
	VisionFreshness time.Duration
	EnvInterval     time.Duration

	ActuatorAddr string // empty -> mock actuator
	HTTPPort     string
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

func getenvFloat(k string, d float64) float64 {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64); err == nil {
			return f
		}
	}
	return d
}

func getenvDur(k string, d time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if dur, err := time.ParseDuration(v); err == nil {
			return dur
		}
		// bare seconds for compatibility with the old config surface
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return d
}

func loadConfig() Config {
	return Config{
		MQTTHost:     getenv("MQTT_HOST", "localhost"),
		MQTTPort:     getenvInt("MQTT_PORT", 1883),
		MQTTUser:     getenv("MQTT_USER", ""),
		MQTTPassword: getenv("MQTT_PASSWORD", ""),

		MotionTopic: getenv("TOPIC_MOTION", "elder/sensor/motion"),
		CamTopic:    getenv("TOPIC_CAM", "elder/sensor/cam"),
		EnvTopic:    getenv("TOPIC_ENV", "elder/sensor/env"),
		CloudTopic:  getenv("TOPIC_CLOUD_MOTION", "elder/cloud/motion"),
		AlertTopic:  getenv("TOPIC_ALERT", "elder/event/alert"),

		GForceLimit:     getenvFloat("G_FORCE_LIMIT", 2.5),
		ConfThreshold:   getenvFloat("CAM_FALL_CONF_THRESHOLD", 0.6),
		HoldDuration:    getenvDur("HOLD_DURATION", 3*time.Second),
		VisionWait:      getenvDur("VISION_WAIT", 1500*time.Millisecond),
		VisionFreshness: getenvDur("VISION_FRESHNESS", 3*time.Second),
		EnvInterval:     getenvDur("ENV_INTERVAL", 5*time.Second),

		ActuatorAddr: getenv("ACTUATOR_GRPC_ADDR", ""),
		HTTPPort:     getenv("PORT", "5000"),
	}
}
