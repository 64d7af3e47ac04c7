package cell

import "testing"

func TestDeriveRunsImmediately(t *testing.T) {
	c := New(3)
	d := Derive(func() int { return c.Get() * 2 })

	if got := d.Peek(); got != 6 {
		t.Errorf("Peek() = %d, want 6 (computation runs at creation)", got)
	}
}

func TestDeriveRecomputesSynchronously(t *testing.T) {
	c := New(1)
	d := Derive(func() int { return c.Get() + 10 })

	c.Set(5)
	// No scheduler: the recomputation happened inside Set.
	if got := d.Peek(); got != 15 {
		t.Errorf("Peek() after Set = %d, want 15", got)
	}
}

func TestDeriveChain(t *testing.T) {
	c := New(2)
	double := Derive(func() int { return c.Get() * 2 })
	quad := Derive(func() int { return double.Get() * 2 })

	if got := quad.Peek(); got != 8 {
		t.Fatalf("quad = %d, want 8", got)
	}

	c.Set(3)
	if got := quad.Peek(); got != 12 {
		t.Errorf("quad after Set = %d, want 12", got)
	}
}

func TestDeriveUnchangedResultDoesNotPropagate(t *testing.T) {
	c := New(1)
	sign := Derive(func() int {
		if c.Get() >= 0 {
			return 1
		}
		return -1
	})

	downstream := 0
	Derive(func() int {
		sign.Get()
		downstream++
		return downstream
	})

	c.Set(7)
	if downstream != 1 {
		t.Errorf("downstream ran %d times, want 1 (sign unchanged)", downstream)
	}

	c.Set(-7)
	if downstream != 2 {
		t.Errorf("downstream ran %d times, want 2 (sign flipped)", downstream)
	}
}

func TestDeriveRetracksDependencies(t *testing.T) {
	useA := New(true)
	a := New("a")
	b := New("b")

	d := Derive(func() string {
		if useA.Get() {
			return a.Get()
		}
		return b.Get()
	})

	if got := a.SubscriberCount(); got != 1 {
		t.Fatalf("a subscribers = %d, want 1", got)
	}
	if got := b.SubscriberCount(); got != 0 {
		t.Fatalf("b subscribers = %d, want 0", got)
	}

	useA.Set(false)

	if got := a.SubscriberCount(); got != 0 {
		t.Errorf("a subscribers after branch switch = %d, want 0", got)
	}
	if got := b.SubscriberCount(); got != 1 {
		t.Errorf("b subscribers after branch switch = %d, want 1", got)
	}
	if got := d.Peek(); got != "b" {
		t.Errorf("value after branch switch = %q, want %q", got, "b")
	}
}

func TestDetachReleasesSources(t *testing.T) {
	c := New(1)
	d := Derive(func() int { return c.Get() })

	if got := c.SubscriberCount(); got != 1 {
		t.Fatalf("subscribers before Detach = %d, want 1", got)
	}

	d.Detach()

	if got := c.SubscriberCount(); got != 0 {
		t.Errorf("subscribers after Detach = %d, want 0", got)
	}
	if !d.Detached() {
		t.Error("Detached() = false after Detach")
	}
}

func TestDetachStopsRecomputation(t *testing.T) {
	c := New(1)

	runs := 0
	d := Derive(func() int {
		runs++
		return c.Get()
	})

	d.Detach()
	c.Set(2)

	if runs != 1 {
		t.Errorf("computation ran %d times after Detach, want 1", runs)
	}
	if got := d.Peek(); got != 1 {
		t.Errorf("Peek() after Detach = %d, want frozen 1", got)
	}
}

func TestDetachIsIdempotent(t *testing.T) {
	c := New(1)
	d := Derive(func() int { return c.Get() })

	d.Detach()
	d.Detach()
	d.Detach()

	if got := c.SubscriberCount(); got != 0 {
		t.Errorf("subscribers after repeated Detach = %d, want 0", got)
	}
}

func TestDetachDuringOwnRun(t *testing.T) {
	c := New(1)

	var d *Derived[int]
	d = Derive(func() int {
		v := c.Get()
		if d != nil && v > 10 {
			d.Detach()
		}
		return v
	})

	c.Set(11)

	if !d.Detached() {
		t.Fatal("derivation did not detach itself")
	}
	if got := c.SubscriberCount(); got != 0 {
		t.Errorf("subscribers after self-detach = %d, want 0 (run-gained subscriptions released)", got)
	}

	c.Set(20)
	if got := d.Peek(); got == 20 {
		t.Error("detached derivation recomputed")
	}
}

func TestDetachedDerivationDropsSubscribers(t *testing.T) {
	c := New(1)
	d := Derive(func() int { return c.Get() })
	Derive(func() int { return d.Get() })

	if got := d.SubscriberCount(); got != 1 {
		t.Fatalf("subscribers before Detach = %d, want 1", got)
	}

	d.Detach()
	if got := d.SubscriberCount(); got != 0 {
		t.Errorf("subscribers after Detach = %d, want 0", got)
	}
}

func TestNestedDeriveTracksOwnDependencies(t *testing.T) {
	outer := New(1)
	inner := New(2)

	var innerD *Derived[int]
	outerRuns := 0
	Derive(func() int {
		outerRuns++
		v := outer.Get()
		if innerD == nil {
			innerD = Derive(func() int { return inner.Get() * 10 })
		}
		return v
	})

	if got := innerD.Peek(); got != 20 {
		t.Fatalf("inner = %d, want 20", got)
	}

	// The inner derivation's read belongs to it, not its creator.
	inner.Set(3)
	if outerRuns != 1 {
		t.Errorf("outer ran %d times after inner source changed, want 1", outerRuns)
	}
	if got := innerD.Peek(); got != 30 {
		t.Errorf("inner after Set = %d, want 30", got)
	}
}

func TestDeriveEquals(t *testing.T) {
	c := New(1)

	downstream := 0
	d := DeriveEquals(func() []int {
		return []int{c.Get()}
	}, func(a, b []int) bool {
		return true // never propagate
	})
	Derive(func() int {
		d.Get()
		downstream++
		return downstream
	})

	c.Set(2)
	if downstream != 1 {
		t.Errorf("downstream ran %d times, want 1 (custom equals suppressed)", downstream)
	}
}

func TestCycleDoesNotRecurse(t *testing.T) {
	c := New(1)

	var d *Derived[int]
	runs := 0
	d = Derive(func() int {
		runs++
		v := c.Get()
		if d != nil {
			d.Get() // self-read through a cycle
		}
		return v
	})

	c.Set(2)

	if runs > 3 {
		t.Errorf("cyclic derivation ran %d times, want bounded", runs)
	}
	if got := d.Peek(); got != 2 {
		t.Errorf("value = %d, want 2", got)
	}
}
