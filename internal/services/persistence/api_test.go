package persistence

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQueryDefaultsAndClamping(t *testing.T) {
	r := httptest.NewRequest("GET", "/alerts/recent", nil)
	p := parseQuery(r, 1440, 50, 2000)
	assert.Equal(t, 1440, p.Minutes)
	assert.Equal(t, 50, p.Limit)
	assert.Equal(t, 2000, p.TimeoutMS)

	r = httptest.NewRequest("GET", "/alerts/recent?minutes=0&limit=99999&timeout_ms=1", nil)
	p = parseQuery(r, 1440, 50, 2000)
	assert.Equal(t, 1, p.Minutes)
	assert.Equal(t, 500, p.Limit)
	assert.Equal(t, 200, p.TimeoutMS)

	r = httptest.NewRequest("GET", "/alerts/recent?minutes=abc", nil)
	p = parseQuery(r, 1440, 50, 2000)
	assert.Equal(t, 1440, p.Minutes)
}

func TestBuildFlux(t *testing.T) {
	q := buildFlux("eldersafe", "environment", "temperature", 60, 200)

	assert.Contains(t, q, `from(bucket: "eldersafe")`)
	assert.Contains(t, q, `range(start: -60m)`)
	assert.Contains(t, q, `r._measurement == "environment"`)
	assert.Contains(t, q, `r._field == "temperature"`)
	assert.Contains(t, q, `limit(n:200)`)
}

func TestAllowedSeries(t *testing.T) {
	assert.True(t, allowedSeries("environment", "temperature"))
	assert.True(t, allowedSeries("motion", "g_force"))
	assert.True(t, allowedSeries("camera", "fall_detected"))

	assert.False(t, allowedSeries("alert", "active"), "alerts have their own endpoint")
	assert.False(t, allowedSeries("environment", "g_force"))
	assert.False(t, allowedSeries("", ""))
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 1.5, toFloat(1.5))
	assert.Equal(t, 3.0, toFloat(int64(3)))
	assert.Equal(t, 2.5, toFloat(" 2.5 "))
	assert.Equal(t, 0.0, toFloat(nil))
	assert.Equal(t, 0.0, toFloat("junk"))
}
