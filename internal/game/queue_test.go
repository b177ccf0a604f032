package game

import "testing"

func newTestCustomer(id int, speed float64) *Customer {
	return &Customer{
		ID:    id,
		Order: NewOrder(OrderLine{Color: ColorRed, Requested: 1}),
		X:     SpawnX,
		Speed: speed,
	}
}

func TestQueueDropsBeyondCap(t *testing.T) {
	q := NewQueue(5)
	for i := 1; i <= 5; i++ {
		if !q.Push(newTestCustomer(i, 2)) {
			t.Fatalf("push %d rejected", i)
		}
	}
	if q.Push(newTestCustomer(6, 2)) {
		t.Fatal("expected sixth customer to be dropped")
	}
	if q.Len() != 5 || !q.Full() {
		t.Fatalf("len = %d, want 5", q.Len())
	}
}

func TestQueueHeadBecomesActiveOnlyAtCounter(t *testing.T) {
	q := NewQueue(5)
	q.Push(newTestCustomer(1, 3))
	if q.Active() != nil {
		t.Fatal("customer still walking should not be active")
	}

	var arrived *Customer
	steps := 0
	for arrived == nil && steps < 1000 {
		arrived = q.Step()
		steps++
	}
	if arrived == nil || arrived.ID != 1 {
		t.Fatalf("expected customer 1 to arrive, got %+v", arrived)
	}
	if arrived.X != ServiceX {
		t.Fatalf("arrived at x=%v, want %v", arrived.X, float64(ServiceX))
	}
	if q.Active() != arrived {
		t.Fatal("arrived head should be active")
	}
	if again := q.Step(); again != nil {
		t.Fatal("arrival must only be reported once")
	}
}

func TestQueueKeepsSpacingAndNeverOvertakes(t *testing.T) {
	q := NewQueue(5)
	// Faster customers behind slower ones must not pass them.
	q.Push(newTestCustomer(1, 2))
	q.Push(newTestCustomer(2, 3))
	q.Push(newTestCustomer(3, 3))

	for step := 0; step < 2000; step++ {
		q.Step()
		cs := q.Customers()
		for i := 1; i < len(cs); i++ {
			if cs[i].X < cs[i-1].X+CustomerWidth+QueueSpacing && cs[i].X != SpawnX {
				t.Fatalf("step %d: customer %d at %v too close to %d at %v", step, cs[i].ID, cs[i].X, cs[i-1].ID, cs[i-1].X)
			}
			if cs[i].AtCounter {
				t.Fatalf("waiting customer %d marked at counter", cs[i].ID)
			}
		}
	}
	cs := q.Customers()
	if cs[1].X != ServiceX+CustomerWidth+QueueSpacing {
		t.Fatalf("second customer settled at %v", cs[1].X)
	}
}

func TestQueueRemoveHeadPromotesNext(t *testing.T) {
	q := NewQueue(5)
	q.Push(newTestCustomer(1, 3))
	q.Push(newTestCustomer(2, 3))
	for q.Active() == nil {
		q.Step()
	}
	removed := q.RemoveHead()
	if removed.ID != 1 {
		t.Fatalf("removed %d, want 1", removed.ID)
	}
	if q.Head().ID != 2 || q.Active() != nil {
		t.Fatal("next customer should be head but still walking")
	}
	var arrived *Customer
	for i := 0; i < 1000 && arrived == nil; i++ {
		arrived = q.Step()
	}
	if arrived == nil || arrived.ID != 2 {
		t.Fatalf("expected customer 2 to reach the counter, got %+v", arrived)
	}
}

func TestQueueClearAndEmptyRemove(t *testing.T) {
	q := NewQueue(2)
	q.Push(newTestCustomer(1, 2))
	q.Clear()
	if q.Len() != 0 || q.Head() != nil || q.RemoveHead() != nil {
		t.Fatal("expected empty queue")
	}
}
