// Package metrics instruments outbound API calls with Prometheus collectors.
package metrics

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the client-side request collectors.
type Metrics struct {
	reg prometheus.Gatherer

	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates the collectors and registers them in a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		reg: reg,
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "semant_client_in_flight_requests",
			Help: "In-flight API requests.",
		}),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "semant_client_requests_total",
				Help: "Total number of API requests.",
			},
			[]string{"method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "semant_client_request_duration_seconds",
				Help:    "API request latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}
	reg.MustRegister(m.inFlight, m.requests, m.duration)
	return m
}

// Transport wraps next so every round trip is counted and timed.
// Transport errors are recorded with status "error".
func (m *Metrics) Transport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		start := time.Now()
		resp, err := next.RoundTrip(r)

		status := "error"
		if err == nil {
			status = strconv.Itoa(resp.StatusCode)
		}
		m.duration.WithLabelValues(r.Method, r.URL.Path, status).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		return resp, err
	})
}

// RequestCount is one row of Summary.
type RequestCount struct {
	Method string
	Path   string
	Status string
	Count  float64
}

// Summary returns the request counters sorted by path, method and status.
func (m *Metrics) Summary() ([]RequestCount, error) {
	families, err := m.reg.Gather()
	if err != nil {
		return nil, err
	}

	var out []RequestCount
	for _, mf := range families {
		if mf.GetName() != "semant_client_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			rc := RequestCount{Count: metric.GetCounter().GetValue()}
			for _, lp := range metric.GetLabel() {
				switch lp.GetName() {
				case "method":
					rc.Method = lp.GetValue()
				case "path":
					rc.Path = lp.GetValue()
				case "status":
					rc.Status = lp.GetValue()
				}
			}
			out = append(out, rc)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		if out[i].Method != out[j].Method {
			return out[i].Method < out[j].Method
		}
		return out[i].Status < out[j].Status
	})
	return out, nil
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
