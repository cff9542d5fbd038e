package session

import (
	"context"
	"testing"
	"time"

	"github.com/rogerio-castellano/storefront-tracker/internal/credstore"
)

func TestPoller_RefreshesWhileAuthenticated(t *testing.T) {
	svc := newFakeService()
	s := New(svc, credstore.NewMemoryStore())
	if err := s.Login(context.Background(), "admin", "admin123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	s.Wait()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewPoller(s, 5*time.Millisecond, nil).Run(ctx)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for svc.Calls("alerts") < 3 || svc.Calls("insights") < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("poller too slow: alerts=%d insights=%d", svc.Calls("alerts"), svc.Calls("insights"))
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	<-done

	if svc.Calls("analyze") != 0 {
		t.Error("poller must not analyze")
	}
}

func TestPoller_IdleWhenLoggedOut(t *testing.T) {
	svc := newFakeService()
	s := New(svc, credstore.NewMemoryStore())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	NewPoller(s, 5*time.Millisecond, nil).Run(ctx)

	if n := svc.Calls("alerts") + svc.Calls("insights"); n != 0 {
		t.Errorf("expected no requests while logged out, got %d", n)
	}
}

func TestPoller_ZeroIntervalDisabled(t *testing.T) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewPoller(New(newFakeService(), credstore.NewMemoryStore()), 0, nil).Run(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run should return immediately with a zero interval")
	}
}
