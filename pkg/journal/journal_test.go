package journal

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHooksNotifyFansOut(t *testing.T) {
	first := &CaptureHook{}
	second := &CaptureHook{}
	hooks := Hooks{first, nil, second}

	if !hooks.Enabled() {
		t.Fatalf("expected hooks to be enabled")
	}

	err := hooks.Notify(context.Background(), Event{Op: "map", From: 1, To: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Events) != 1 || len(second.Events) != 1 {
		t.Fatalf("expected both hooks notified, got %d and %d", len(first.Events), len(second.Events))
	}
}

func TestHooksNotifyJoinsErrors(t *testing.T) {
	failing := errors.New("sink unavailable")
	ok := &CaptureHook{}
	bad := &CaptureHook{Err: failing}

	err := Hooks{ok, bad}.Notify(context.Background(), Event{Op: "map"})
	if !errors.Is(err, failing) {
		t.Fatalf("expected joined error to include the hook failure, got %v", err)
	}
	if len(ok.Events) != 1 {
		t.Fatalf("a failing sibling must not block delivery, got %d events", len(ok.Events))
	}
}

func TestHooksNotifySkipsMissingOp(t *testing.T) {
	capture := &CaptureHook{}
	if err := (Hooks{capture}).Notify(context.Background(), Event{Op: "   "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(capture.Events) != 0 {
		t.Fatalf("expected event without op to be dropped, got %d", len(capture.Events))
	}
}

func TestNormalizeEventFillsIdentity(t *testing.T) {
	normalized := NormalizeEvent(Event{Op: " map ", Expr: " value + 1 "})

	if normalized.Op != "map" {
		t.Fatalf("expected trimmed op, got %q", normalized.Op)
	}
	if normalized.Expr != "value + 1" {
		t.Fatalf("expected trimmed expr, got %q", normalized.Expr)
	}
	if normalized.ID == "" {
		t.Fatalf("expected a generated event ID")
	}
	if normalized.OccurredAt.IsZero() {
		t.Fatalf("expected a default timestamp")
	}

	second := NormalizeEvent(Event{Op: "map"})
	if second.ID == normalized.ID {
		t.Fatalf("expected unique event IDs")
	}
}

func TestNormalizeEventPreservesExplicitIdentity(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	event := Event{ID: "fixed", Op: "map", OccurredAt: at, Metadata: map[string]any{"k": "v"}}

	normalized := NormalizeEvent(event)
	if normalized.ID != "fixed" {
		t.Fatalf("expected explicit ID preserved, got %q", normalized.ID)
	}
	if !normalized.OccurredAt.Equal(at) {
		t.Fatalf("expected explicit timestamp preserved, got %v", normalized.OccurredAt)
	}

	normalized.Metadata["k"] = "mutated"
	if event.Metadata["k"] != "v" {
		t.Fatalf("expected metadata cloned, original was mutated")
	}
}

func TestHookFuncAdapter(t *testing.T) {
	var got Event
	fn := HookFunc(func(_ context.Context, event Event) error {
		got = event
		return nil
	})

	if err := fn.Notify(context.Background(), Event{Op: "map"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Op != "map" {
		t.Fatalf("expected event delivered, got %+v", got)
	}

	var nilFn HookFunc
	if err := nilFn.Notify(context.Background(), Event{Op: "map"}); err != nil {
		t.Fatalf("nil HookFunc must be a no-op, got %v", err)
	}
}

func TestEmitterAppliesConfig(t *testing.T) {
	capture := &CaptureHook{}

	disabled := NewEmitter(Hooks{capture}, Config{Enabled: false})
	if disabled.Enabled() {
		t.Fatalf("expected disabled emitter")
	}
	if err := disabled.Emit(context.Background(), Event{Op: "map"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(capture.Events) != 0 {
		t.Fatalf("disabled emitter must not deliver, got %d events", len(capture.Events))
	}

	enabled := NewEmitter(Hooks{capture}, Config{Enabled: true})
	if !enabled.Enabled() {
		t.Fatalf("expected enabled emitter")
	}
	if err := enabled.Emit(context.Background(), Event{Op: "map"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(capture.Events) != 1 {
		t.Fatalf("expected one delivery, got %d", len(capture.Events))
	}

	empty := NewEmitter(nil, Config{Enabled: true})
	if empty.Enabled() {
		t.Fatalf("emitter without hooks must be disabled")
	}
}
