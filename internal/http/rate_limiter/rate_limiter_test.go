package rate_limiter

import (
	"testing"
	"time"
)

func TestVisitors_BurstThenDeny(t *testing.T) {
	v := NewVisitors(1, 3)

	for i := 0; i < 3; i++ {
		if !v.Allow("10.0.0.1") {
			t.Fatalf("request %d should be within burst", i+1)
		}
	}
	if v.Allow("10.0.0.1") {
		t.Error("fourth request should be limited")
	}
	if !v.Allow("10.0.0.2") {
		t.Error("other visitors have their own bucket")
	}
}

func TestVisitors_Cleanup(t *testing.T) {
	v := NewVisitors(1, 1)
	v.Get("a")
	v.Get("b")

	v.Cleanup(time.Hour)
	if v.Len() != 2 {
		t.Fatalf("recent visitors should stay, got %d", v.Len())
	}

	time.Sleep(5 * time.Millisecond)
	v.Cleanup(time.Millisecond)
	if v.Len() != 0 {
		t.Errorf("idle visitors should be dropped, got %d", v.Len())
	}
}
