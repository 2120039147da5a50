package reportserver

import (
	"context"
	"testing"
	"time"
)

func TestServeRequiresAddr(t *testing.T) {
	if err := Serve(context.Background(), Config{Summary: sampleSummary(t)}); err == nil {
		t.Fatalf("expected error without addr")
	}
}

// TestServeStopsOnCancel verifies graceful shutdown when the context ends.
func TestServeStopsOnCancel(t *testing.T) {
	summary := sampleSummary(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, Config{Addr: "127.0.0.1:0", Summary: summary})
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("serve did not stop after cancel")
	}
}
