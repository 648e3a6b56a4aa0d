package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveDB(t *testing.T) {
	c := NewCollector("petclinic")

	c.ObserveDB("put", "owner", "ok", 3*time.Millisecond)
	c.ObserveDB("put", "owner", "ok", time.Millisecond)
	c.ObserveDB("get", "pet", "storage", time.Millisecond)

	if got := testutil.ToFloat64(c.DBOperations.WithLabelValues("put", "owner", "ok")); got != 2 {
		t.Fatalf("expected 2 puts, got %v", got)
	}
	if got := testutil.ToFloat64(c.DBOperations.WithLabelValues("get", "pet", "storage")); got != 1 {
		t.Fatalf("expected 1 failed get, got %v", got)
	}
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	c.ObserveDB("put", "owner", "ok", time.Millisecond)
	c.ObserveHTTP("GET", "/health", 200, time.Millisecond)
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector("a")
	b := NewCollector("a")

	a.ObserveHTTP("GET", "/x", 200, time.Millisecond)

	if got := testutil.ToFloat64(b.HTTPRequests.WithLabelValues("GET", "/x", "200")); got != 0 {
		t.Fatalf("expected separate registries, got %v", got)
	}
}
