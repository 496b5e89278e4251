// Honeyscope - Honeypot Authentication Attack Classification and Live Feed
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/honeyscope

package websocket

import (
	"fmt"
	"testing"

	"github.com/tomtom215/honeyscope/internal/models"
)

func event(id int) models.EnrichedEvent {
	return models.EnrichedEvent{ID: fmt.Sprintf("ev-%d", id)}
}

func ids(events []models.EnrichedEvent) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.ID
	}
	return out
}

func TestBacklogNeverExceedsCapacity(t *testing.T) {
	b := NewBacklog(10)
	for i := 0; i < 25; i++ {
		b.Add(event(i))
		if b.Len() > b.Cap() {
			t.Fatalf("Len %d exceeds Cap %d", b.Len(), b.Cap())
		}
	}
	if b.Len() != 10 {
		t.Errorf("Len = %d, want 10", b.Len())
	}
}

func TestBacklogEvictsOldestFirst(t *testing.T) {
	b := NewBacklog(DefaultBacklogSize)
	for i := 0; i <= DefaultBacklogSize; i++ {
		b.Add(event(i))
	}

	all := b.Last(DefaultBacklogSize)
	if len(all) != DefaultBacklogSize {
		t.Fatalf("Last returned %d, want %d", len(all), DefaultBacklogSize)
	}
	if all[0].ID != "ev-1" {
		t.Errorf("oldest retained = %s, want ev-1 (ev-0 evicted)", all[0].ID)
	}
	for i := 1; i < len(all); i++ {
		if all[i].ID != fmt.Sprintf("ev-%d", i+1) {
			t.Fatalf("position %d = %s, insertion order broken", i, all[i].ID)
		}
	}
}

func TestBacklogLast(t *testing.T) {
	b := NewBacklog(DefaultBacklogSize)
	for i := 0; i < DefaultBacklogSize; i++ {
		b.Add(event(i))
	}

	got := ids(b.Last(5))
	want := []string{"ev-995", "ev-996", "ev-997", "ev-998", "ev-999"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Last(5) = %v, want %v", got, want)
	}

	if n := len(b.Last(5000)); n != DefaultBacklogSize {
		t.Errorf("Last(5000) returned %d, want clamp to %d", n, DefaultBacklogSize)
	}
	if n := len(b.Last(-3)); n != 0 {
		t.Errorf("Last(-3) returned %d, want 0", n)
	}
}

func TestBacklogPartialFill(t *testing.T) {
	b := NewBacklog(4)
	b.Add(event(1))
	b.Add(event(2))

	if got := ids(b.Last(10)); fmt.Sprint(got) != "[ev-1 ev-2]" {
		t.Errorf("Last = %v", got)
	}

	b.Clear()
	if b.Len() != 0 || len(b.Last(10)) != 0 {
		t.Error("Clear left events behind")
	}
	b.Add(event(3))
	if got := ids(b.Last(1)); got[0] != "ev-3" {
		t.Errorf("after Clear, Last = %v", got)
	}
}

func TestNewBacklogDefaultCapacity(t *testing.T) {
	if got := NewBacklog(0).Cap(); got != DefaultBacklogSize {
		t.Errorf("Cap = %d, want %d", got, DefaultBacklogSize)
	}
}
