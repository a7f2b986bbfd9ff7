package engine

import (
	"context"
	"testing"
)

func TestDispatcherPriority(t *testing.T) {
	d := NewDispatcher(2)

	var order []int
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	d.Post(Normal, func() { order = append(order, 1) })
	d.Post(High, func() { order = append(order, 2) })
	d.Post(High, func() { order = append(order, 3) })

	if d.Post(High, func() {}) {
		t.Error("Post succeeded on a full lane")
	}

	go func() {
		d.Run(ctx)
		close(done)
	}()

	finished := make(chan struct{})
	d.Post(Normal, func() { close(finished) })
	<-finished
	cancel()
	<-done

	want := []int{2, 3, 1}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}
