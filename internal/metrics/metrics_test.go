package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg)

	if m.RequestsTotal == nil || m.RequestDuration == nil || m.RequestsInFlight == nil {
		t.Fatal("request metrics not initialized")
	}
	if m.CalculationsTotal == nil || m.EffectiveMonthly == nil || m.MonthlyPremium == nil {
		t.Fatal("calculation metrics not initialized")
	}
	if m.Registry() != reg {
		t.Error("Registry returned a different registry")
	}
}

func TestObserveCalculation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg)

	m.ObserveCalculation(OutcomeOK, 56916, 4916)
	m.ObserveCalculation(OutcomeInvalidDuration, 0, 0)
	m.ObserveCalculation(OutcomeInvalidDuration, 0, 0)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}

	counts := map[string]float64{}
	var observed uint64
	for _, f := range families {
		switch f.GetName() {
		case "rentcost_calculations_total":
			for _, metric := range f.GetMetric() {
				for _, l := range metric.GetLabel() {
					if l.GetName() == "outcome" {
						counts[l.GetValue()] = metric.GetCounter().GetValue()
					}
				}
			}
		case "rentcost_effective_monthly_cost_yen":
			observed = f.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}

	if counts[OutcomeOK] != 1 || counts[OutcomeInvalidDuration] != 2 {
		t.Errorf("unexpected outcome counts: %v", counts)
	}
	if observed != 1 {
		t.Errorf("expected 1 effective cost observation, got %d", observed)
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.ListingsCompared.Add(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "rentcost_listings_compared_total 3") {
		t.Errorf("expected listings counter in exposition output:\n%s", body)
	}
	if !strings.Contains(string(body), "go_goroutines") {
		t.Error("expected Go runtime metrics")
	}
}
