package keepalive

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestPingerHitsTarget(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := New(srv.URL, 20*time.Millisecond)
	p.Start()
	defer p.Stop()

	deadline := time.After(2 * time.Second)
	for hits.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 2 pings, got %d", hits.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestPingerNoURLIsNoop(t *testing.T) {
	p := New("", time.Millisecond)
	p.Start()
	// Stop must not panic even though no goroutine was started.
	p.Stop()
}
