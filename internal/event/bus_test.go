package event

import "testing"

const (
	keyA Key = "a"
	keyB Key = "b"
)

func TestNotifyPreservesArrivalOrder(t *testing.T) {
	b := NewBus()
	for i := 0; i < 3; i++ {
		b.Notify(New(keyA, i))
	}

	got := b.Consume(keyA)
	if len(got) != 3 {
		t.Fatalf("Consume() returned %d events, expected 3", len(got))
	}
	for i, ev := range got {
		if ev.Payload != i {
			t.Errorf("event %d payload = %v, expected %d", i, ev.Payload, i)
		}
		if ev.Key != keyA {
			t.Errorf("event %d key = %q, expected %q", i, ev.Key, keyA)
		}
	}
}

func TestConsumeDrainsOnce(t *testing.T) {
	b := NewBus()
	b.Notify(New(keyA, "x"))

	first := b.Consume(keyA)
	if len(first) != 1 {
		t.Fatalf("first Consume() returned %d events, expected 1", len(first))
	}
	if second := b.Consume(keyA); second != nil {
		t.Errorf("second Consume() = %v, expected nil", second)
	}
}

func TestConsumeUnknownKey(t *testing.T) {
	b := NewBus()
	if got := b.Consume("missing"); got != nil {
		t.Errorf("Consume() on empty bus = %v, expected nil", got)
	}
}

func TestConsumeIsolatesKeys(t *testing.T) {
	b := NewBus()
	b.Notify(New(keyA, 1))
	b.Notify(New(keyB, 2))

	b.Consume(keyA)
	if b.Len(keyB) != 1 {
		t.Errorf("Len(keyB) = %d, expected 1 after draining keyA", b.Len(keyB))
	}
}

func TestPeekDoesNotRemove(t *testing.T) {
	b := NewBus()
	b.Notify(New(keyA, 1))
	b.Notify(New(keyA, 2))

	peeked := b.Peek(keyA)
	if len(peeked) != 2 {
		t.Fatalf("Peek() returned %d events, expected 2", len(peeked))
	}

	// Mutating the peeked slice must not reach the queue.
	peeked[0] = New(keyA, 99)

	got := b.Consume(keyA)
	if len(got) != 2 || got[0].Payload != 1 {
		t.Errorf("Consume() after Peek() = %v, expected original two events", got)
	}
	if b.Peek(keyA) != nil {
		t.Error("Peek() on drained key should return nil")
	}
}

func TestConsumeMatchingPartitions(t *testing.T) {
	b := NewBus()
	for i := 0; i < 6; i++ {
		b.Notify(New(keyA, i))
	}

	even := func(ev Event) bool { return ev.Payload.(int)%2 == 0 }
	taken := b.ConsumeMatching(keyA, even)
	rest := b.Consume(keyA)

	if len(taken)+len(rest) != 6 {
		t.Fatalf("partition lost or duplicated events: taken=%d rest=%d", len(taken), len(rest))
	}

	expectTaken := []int{0, 2, 4}
	for i, ev := range taken {
		if ev.Payload != expectTaken[i] {
			t.Errorf("taken[%d] = %v, expected %d", i, ev.Payload, expectTaken[i])
		}
	}
	expectRest := []int{1, 3, 5}
	for i, ev := range rest {
		if ev.Payload != expectRest[i] {
			t.Errorf("rest[%d] = %v, expected %d", i, ev.Payload, expectRest[i])
		}
	}
}

func TestConsumeMatchingNoMatch(t *testing.T) {
	b := NewBus()
	b.Notify(New(keyA, 1))

	got := b.ConsumeMatching(keyA, func(Event) bool { return false })
	if got != nil {
		t.Errorf("ConsumeMatching() = %v, expected nil", got)
	}
	if b.Len(keyA) != 1 {
		t.Errorf("Len() = %d, expected 1 (nothing removed)", b.Len(keyA))
	}
}

func TestConsumeMatchingAllRemovesKey(t *testing.T) {
	b := NewBus()
	b.Notify(New(keyA, 1))
	b.Notify(New(keyA, 2))

	got := b.ConsumeMatching(keyA, func(Event) bool { return true })
	if len(got) != 2 {
		t.Errorf("ConsumeMatching() returned %d events, expected 2", len(got))
	}
	if b.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", b.Pending())
	}
}

func TestPendingAndReset(t *testing.T) {
	b := NewBus()
	b.Notify(New(keyA, 1))
	b.Notify(New(keyA, 2))
	b.Notify(New(keyB, 3))

	if b.Pending() != 3 {
		t.Errorf("Pending() = %d, expected 3", b.Pending())
	}

	b.Reset()
	if b.Pending() != 0 {
		t.Errorf("Pending() after Reset() = %d, expected 0", b.Pending())
	}
	if b.Consume(keyA) != nil {
		t.Error("Consume() after Reset() should return nil")
	}
}

func TestZeroValueBus(t *testing.T) {
	var b Bus
	b.Notify(New(keyA, 1))
	if b.Len(keyA) != 1 {
		t.Errorf("zero-value bus Len() = %d, expected 1", b.Len(keyA))
	}
}
