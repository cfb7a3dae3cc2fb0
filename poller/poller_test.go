package poller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go-kdms/kdms"
	"go-kdms/overlay"
	"go-kdms/types"
)

func testStore() *overlay.Store {
	geometries := []types.CountyGeometry{
		{Name: "Nairobi City", Geometry: json.RawMessage(`{"type":"Polygon","coordinates":[]}`)},
	}
	return overlay.NewStore(geometries, func(ctx context.Context, id int) error { return nil })
}

func TestPollOnceAppliesWithIncreasingSequence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/disasters":
			json.NewEncoder(w).Encode([]types.Disaster{
				{ID: 1, CountyName: "Nairobi", Severity: types.High, Status: types.Active},
			})
		case "/counties/risk":
			json.NewEncoder(w).Encode([]types.CountyRisk{
				{Name: "Nairobi", RiskScore: 85},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	store := testStore()
	p := New(kdms.NewClient(server.URL), store, time.Minute, time.Minute)

	p.PollDisastersOnce()
	p.PollRisksOnce()
	p.PollDisastersOnce()

	dSeq, rSeq := store.Sequences()
	if dSeq != 2 || rSeq != 1 {
		t.Errorf("sequences = (%d, %d), want (2, 1)", dSeq, rSeq)
	}

	views := store.Views()
	if len(views) != 1 || len(views[0].Disasters) != 1 {
		t.Fatalf("poll did not reach the store: %+v", views)
	}
	if views[0].Style.Band != types.BandCritical {
		t.Errorf("band = %s, want critical", views[0].Style.Band)
	}
}

func TestFailedPollsRetainViewAndDegrade(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			http.Error(w, "backend down", http.StatusInternalServerError)
			return
		}
		switch r.URL.Path {
		case "/disasters":
			json.NewEncoder(w).Encode([]types.Disaster{
				{ID: 1, CountyName: "Nairobi", Severity: types.Low, Status: types.Active},
			})
		case "/counties/risk":
			json.NewEncoder(w).Encode([]types.CountyRisk{})
		}
	}))
	defer server.Close()

	store := testStore()
	p := New(kdms.NewClient(server.URL), store, time.Minute, time.Minute)

	p.PollDisastersOnce()
	if len(store.Views()[0].Disasters) != 1 {
		t.Fatal("initial poll did not populate the store")
	}

	healthy.Store(false)
	for i := 0; i < failureThreshold; i++ {
		if p.Degraded() {
			t.Fatalf("degraded after only %d failures", i)
		}
		p.PollDisastersOnce()
	}

	if !p.Degraded() {
		t.Error("not degraded after consecutive failures")
	}
	// Previous view retained unchanged through every failure.
	if len(store.Views()[0].Disasters) != 1 {
		t.Error("failed polls mutated the view")
	}

	healthy.Store(true)
	p.PollDisastersOnce()
	if p.Degraded() {
		t.Error("still degraded after a successful poll")
	}
}

func TestStartStopLifecycle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/disasters":
			json.NewEncoder(w).Encode([]types.Disaster{})
		case "/counties/risk":
			json.NewEncoder(w).Encode([]types.CountyRisk{})
		}
	}))
	defer server.Close()

	store := testStore()
	p := New(kdms.NewClient(server.URL), store, time.Minute, time.Minute)

	if p.IsPolling() {
		t.Error("polling before Start")
	}
	if err := p.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !p.IsPolling() {
		t.Error("not polling after Start")
	}
	if err := p.Start(); err == nil {
		t.Error("second Start did not error")
	}

	p.Stop()
	if p.IsPolling() {
		t.Error("still polling after Stop")
	}
	// Idempotent.
	p.Stop()
}
