package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestHTTPMetricsExportsCounterAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "/menu", "200", 30*time.Millisecond)
	m.ObserveRequest("GET", "/menu", "200", 10*time.Millisecond)
	m.ObserveRequest("POST", "/order", "400", 5*time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := counterValue(mfs, "http_requests_total", map[string]string{"method": "GET", "route": "/menu", "status": "200"}); err != nil {
		t.Fatalf("fetch counter: %v", err)
	} else if got != 2 {
		t.Fatalf("expected 2 GET /menu requests, got %f", got)
	}

	if got, err := histogramCount(mfs, "http_request_duration_seconds", map[string]string{"method": "GET", "route": "/menu"}); err != nil {
		t.Fatalf("fetch histogram: %v", err)
	} else if got != 2 {
		t.Fatalf("expected histogram count 2, got %d", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *HTTPMetrics
	m.ObserveRequest("GET", "/menu", "200", time.Millisecond)

	empty := NewHTTPMetrics(nil)
	empty.ObserveRequest("GET", "", "200", time.Millisecond)
}

func counterValue(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	metric := findMetric(mfs, name, labels)
	if metric == nil {
		return 0, fmt.Errorf("metric %q with labels %v not found", name, labels)
	}
	return metric.GetCounter().GetValue(), nil
}

func histogramCount(mfs []*dto.MetricFamily, name string, labels map[string]string) (uint64, error) {
	metric := findMetric(mfs, name, labels)
	if metric == nil {
		return 0, fmt.Errorf("metric %q with labels %v not found", name, labels)
	}
	return metric.GetHistogram().GetSampleCount(), nil
}

func findMetric(mfs []*dto.MetricFamily, name string, labels map[string]string) *dto.Metric {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if matchesLabels(metric.GetLabel(), labels) {
				return metric
			}
		}
	}
	return nil
}

func matchesLabels(pairs []*dto.LabelPair, labels map[string]string) bool {
	for key, value := range labels {
		matched := false
		for _, pair := range pairs {
			if pair.GetName() == key && pair.GetValue() == value {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
