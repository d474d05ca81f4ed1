package progress

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSequenceRun(t *testing.T) {
	const delay = 5 * time.Millisecond

	var seen []Stage
	start := time.Now()
	err := New(DefaultStages(), delay, nil).Run(context.Background(), func(s Stage) {
		seen = append(seen, s)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(seen) != len(DefaultStages()) {
		t.Fatalf("expected %d stages, got %d", len(DefaultStages()), len(seen))
	}

	if last := seen[len(seen)-1]; last.Percent != 100 {
		t.Fatalf("expected final stage at 100%%, got %d", last.Percent)
	}

	if elapsed, want := time.Since(start), time.Duration(len(seen))*delay; elapsed < want {
		t.Fatalf("expected one pause per stage (at least %s), took %s", want, elapsed)
	}
}

func TestSequenceRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var notified int
	err := New(DefaultStages(), time.Hour, nil).Run(ctx, func(Stage) {
		notified++
		cancel()
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	if notified != 1 {
		t.Fatalf("expected the sequence to stop after the first stage, got %d", notified)
	}
}

func TestWaitFor(t *testing.T) {
	tests := []struct {
		name    string
		delay   time.Duration
		cancel  bool
		wantErr bool
	}{
		{name: "zero delay returns immediately", delay: 0},
		{name: "negative delay returns immediately", delay: -time.Second},
		{name: "completes", delay: time.Millisecond},
		{name: "cancelled context", delay: time.Hour, cancel: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancel {
				cancel()
			}

			err := WaitFor(ctx, tt.delay)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestWaitForCancelledWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := WaitFor(ctx, time.Hour)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}

	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("expected the wait to end with the context, took %s", elapsed)
	}
}
