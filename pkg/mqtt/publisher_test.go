package mqtt

import (
	"net/url"
	"testing"
	"time"

	"github.com/mikesmitty/smooth-boy/pkg/env"
)

func TestPublisherReturnsWhenInputsClose(t *testing.T) {
	broker, err := url.Parse("tcp://localhost:1883")
	if err != nil {
		t.Fatal(err)
	}
	c := NewClient(broker, 1)

	tempRaw := make(chan float64)
	tempSmooth := make(chan float64)
	tempNoise := make(chan float64)
	lightRaw := make(chan float64)
	lightSmooth := make(chan float64)
	lightNoise := make(chan float64)
	dewpt := make(chan float64)
	ref := make(chan env.Env)

	run := c.GetPublisher(tempRaw, tempSmooth, tempNoise, lightRaw, lightSmooth, lightNoise, dewpt, ref)

	for _, ch := range []chan float64{tempRaw, tempSmooth, tempNoise, lightRaw, lightSmooth, lightNoise, dewpt} {
		close(ch)
	}
	close(ref)

	done := make(chan error, 1)
	go func() { done <- run() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("publisher returned %v after inputs closed, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("publisher did not return after all inputs closed")
	}
}
