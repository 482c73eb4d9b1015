package utils

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestRunTasks(t *testing.T) {
	var ran atomic.Int32
	boom := errors.New("boom")

	errs := RunTasks([]Task{
		func() error { ran.Add(1); return nil },
		func() error { ran.Add(1); return boom },
		func() error { ran.Add(1); return nil },
	})

	if got := ran.Load(); got != 3 {
		t.Fatalf("ran %d tasks, want 3", got)
	}
	if errs[0] != nil || errs[2] != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !errors.Is(errs[1], boom) {
		t.Fatalf("errs[1] = %v, want boom", errs[1])
	}
}

func TestRunTasksEmpty(t *testing.T) {
	if errs := RunTasks(nil); len(errs) != 0 {
		t.Fatalf("expected no error slots, got %d", len(errs))
	}
}
