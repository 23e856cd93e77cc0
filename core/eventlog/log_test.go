package eventlog

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/kilianp07/kitchen/core/model"
)

func ev(id string, kind model.EventKind, target model.PoolKind) model.Event {
	return model.Event{Timestamp: time.Now(), OrderID: id, Kind: kind, Target: target}
}

func TestLogAppendAndQuery(t *testing.T) {
	l := New()
	l.Append(ev("a", model.EventPlace, model.Shelf), ev("b", model.EventPlace, model.Heater))
	l.Append(ev("a", model.EventMove, model.Cooler))

	if l.Len() != 3 {
		t.Fatalf("expected 3 events, got %d", l.Len())
	}
	cases := []struct {
		q    Query
		want int
	}{
		{Query{OrderID: "a"}, 2},
		{Query{Kind: model.EventPlace}, 2},
		{Query{Target: model.Cooler}, 1},
		{Query{}, 3},
	}
	for _, c := range cases {
		if got := len(l.Query(c.q)); got != c.want {
			t.Errorf("query %+v: expected %d events, got %d", c.q, c.want, got)
		}
	}
	counts := l.CountByKind()
	if counts[model.EventPlace] != 2 || counts[model.EventMove] != 1 || len(counts) != 2 {
		t.Fatalf("unexpected counts %v", counts)
	}
}

func TestLogEventsIsCopy(t *testing.T) {
	l := New()
	l.Append(ev("a", model.EventPlace, model.Shelf))
	out := l.Events()
	out[0].OrderID = "mutated"
	if got := l.Events()[0].OrderID; got != "a" {
		t.Fatalf("log mutated through copy: %s", got)
	}
}

func TestLogHasDiscard(t *testing.T) {
	l := New()
	l.Append(ev("a", model.EventPlace, model.Shelf))
	if l.HasDiscard("a") {
		t.Fatal("a not discarded yet")
	}
	l.Append(ev("a", model.EventDiscard, model.Shelf))
	if !l.HasDiscard("a") {
		t.Fatal("expected discard for a")
	}
	if l.HasDiscard("b") {
		t.Fatal("b was never logged")
	}
}

func TestLogConcurrentAppend(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				l.Append(ev(fmt.Sprintf("%d-%d", w, i), model.EventPlace, model.Shelf))
			}
		}(w)
	}
	wg.Wait()
	if l.Len() != 400 {
		t.Fatalf("expected 400 events, got %d", l.Len())
	}
}

func TestVerify(t *testing.T) {
	good := []model.Event{
		ev("a", model.EventPlace, model.Shelf),
		ev("b", model.EventPlace, model.Shelf),
		ev("a", model.EventMove, model.Cooler),
		ev("b", model.EventDiscard, model.Shelf),
		ev("a", model.EventPickup, model.Cooler),
	}
	if errs := Verify(good); len(errs) != 0 {
		t.Fatalf("unexpected violations: %v", errs)
	}

	bad := []model.Event{
		ev("a", model.EventPlace, model.Shelf),
		ev("a", model.EventDiscard, model.Shelf),
		ev("a", model.EventPickup, model.Shelf),
		ev("c", model.EventMove, model.Heater),
		ev("d", model.EventPlace, model.Shelf),
		ev("d", model.EventPlace, model.Shelf),
	}
	if errs := Verify(bad); len(errs) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(errs), errs)
	}
}

func TestVerifyPickupFromWrongPool(t *testing.T) {
	evs := []model.Event{
		ev("a", model.EventPlace, model.Shelf),
		ev("a", model.EventMove, model.Cooler),
		ev("a", model.EventPickup, model.Heater),
	}
	errs := Verify(evs)
	if len(errs) != 1 {
		t.Fatalf("expected 1 violation, got %v", errs)
	}
	if !strings.Contains(errs[0].Error(), "resident in cooler") {
		t.Fatalf("unexpected violation: %v", errs[0])
	}
}

func TestVerifyDiscardFromWrongPool(t *testing.T) {
	evs := []model.Event{
		ev("a", model.EventPlace, model.Heater),
		ev("a", model.EventDiscard, model.Shelf),
	}
	if errs := Verify(evs); len(errs) != 1 {
		t.Fatalf("expected 1 violation, got %v", errs)
	}
}
