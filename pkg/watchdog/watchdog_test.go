package watchdog

import (
	"errors"
	"testing"
	"time"
)

func TestWatchdogFiresAfterTwoQuietWindows(t *testing.T) {
	errStall := errors.New("stalled")
	input := make(chan float64)
	run := NewWatchdog(10*time.Millisecond, func() error { return errStall }, input)

	done := make(chan error, 1)
	go func() { done <- run() }()

	select {
	case err := <-done:
		if err != errStall {
			t.Fatalf("watchdog returned %v, want %v", err, errStall)
		}
	case <-time.After(time.Second):
		t.Fatal("watchdog did not fire")
	}
}

func TestWatchdogReturnsOnInputClose(t *testing.T) {
	input := make(chan float64)
	fired := false
	run := NewWatchdog(10*time.Millisecond, func() error {
		fired = true
		return errors.New("stalled")
	}, input)

	close(input)
	done := make(chan error, 1)
	go func() { done <- run() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watchdog returned %v after input close, want nil", err)
		}
		if fired {
			t.Fatal("watchdog fired during shutdown, want clean return")
		}
	case <-time.After(time.Second):
		t.Fatal("watchdog did not return after input close")
	}
}

func TestWatchdogStaysQuietWhileFed(t *testing.T) {
	input := make(chan float64)
	run := NewWatchdog(20*time.Millisecond, func() error { return errors.New("stalled") }, input)

	done := make(chan error, 1)
	go func() { done <- run() }()

	feed := time.NewTicker(5 * time.Millisecond)
	defer feed.Stop()
	stop := time.After(100 * time.Millisecond)
	for {
		select {
		case <-feed.C:
			input <- 1
		case err := <-done:
			t.Fatalf("watchdog fired while fed: %v", err)
		case <-stop:
			return
		}
	}
}
