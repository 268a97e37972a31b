package queue_test

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/randomizedcoder/boundedq/internal/queue"
)

// factory builds a queue of ints under test.
type factory struct {
	name string
	new  func(capacity int) (queue.Cancellable[int], error)
}

var implementations = []factory{
	{"Blocking", func(capacity int) (queue.Cancellable[int], error) {
		q, err := queue.New[int](capacity)
		if err != nil {
			return nil, err
		}
		return q, nil
	}},
	{"BlockingLazy", func(capacity int) (queue.Cancellable[int], error) {
		q, err := queue.New[int](capacity, queue.WithLazyBuffer())
		if err != nil {
			return nil, err
		}
		return q, nil
	}},
	{"Channel", func(capacity int) (queue.Cancellable[int], error) {
		q, err := queue.NewChannel[int](capacity)
		if err != nil {
			return nil, err
		}
		return q, nil
	}},
}

func mustNew(t testing.TB, f factory, capacity int) queue.Cancellable[int] {
	t.Helper()
	q, err := f.new(capacity)
	if err != nil {
		t.Fatalf("%s: New(%d) returned error: %v", f.name, capacity, err)
	}
	return q
}

func testQueue[T comparable](t *testing.T, q queue.Queue[T], val T, name string) {
	t.Helper()

	if n := q.Count(); n != 0 {
		t.Errorf("%s: expected Count() = 0 on new queue, got %d", name, n)
	}

	q.Push(val)
	if n := q.Count(); n != 1 {
		t.Errorf("%s: expected Count() = 1 after Push(), got %d", name, n)
	}

	// Pop returns pushed value
	if got := q.Pop(); got != val {
		t.Errorf("%s: expected %v, got %v", name, val, got)
	}

	// Queue is empty again
	if n := q.Count(); n != 0 {
		t.Errorf("%s: expected Count() = 0 after draining, got %d", name, n)
	}
}

func TestBlocking(t *testing.T) {
	q, err := queue.New[int](8)
	if err != nil {
		t.Fatal(err)
	}
	testQueue[int](t, q, 42, "Blocking")
}

func TestChannel(t *testing.T) {
	q, err := queue.NewChannel[int](8)
	if err != nil {
		t.Fatal(err)
	}
	testQueue[int](t, q, 42, "Channel")
}

func TestNew_InvalidCapacity(t *testing.T) {
	for _, f := range implementations {
		for _, capacity := range []int{0, -1, -1000} {
			q, err := f.new(capacity)
			if err == nil {
				t.Errorf("%s: expected error for capacity %d", f.name, capacity)
			}
			if !errors.Is(err, queue.ErrInvalidArgument) {
				t.Errorf("%s: expected ErrInvalidArgument for capacity %d, got %v", f.name, capacity, err)
			}
			if q != nil {
				t.Errorf("%s: expected nil queue for capacity %d", f.name, capacity)
			}
		}
	}
}

func TestNew_ValidCapacity(t *testing.T) {
	for _, f := range implementations {
		for _, capacity := range []int{1, 2, 5, 64, 1000} {
			q := mustNew(t, f, capacity)
			if q.Count() != 0 {
				t.Errorf("%s(%d): expected Count() = 0, got %d", f.name, capacity, q.Count())
			}
			if q.Size() != capacity {
				t.Errorf("%s(%d): expected Size() = %d, got %d", f.name, capacity, capacity, q.Size())
			}
		}
	}
}

func TestQueue_FIFO(t *testing.T) {
	for _, f := range implementations {
		t.Run(f.name, func(t *testing.T) {
			q := mustNew(t, f, 8)

			for i := 0; i < 5; i++ {
				q.Push(i)
			}

			for i := 0; i < 5; i++ {
				if got := q.Pop(); got != i {
					t.Errorf("FIFO violation: expected %d, got %d", i, got)
				}
			}
		})
	}
}

// Push and pop past the end of the backing storage several times.
func TestQueue_FIFO_WrapAround(t *testing.T) {
	for _, f := range implementations {
		t.Run(f.name, func(t *testing.T) {
			q := mustNew(t, f, 3)

			next, want := 0, 0
			for round := 0; round < 10; round++ {
				for q.Count() < q.Size() {
					q.Push(next)
					next++
				}
				for i := 0; i < 2; i++ {
					if got := q.Pop(); got != want {
						t.Fatalf("round %d: expected %d, got %d", round, want, got)
					}
					want++
				}
			}
		})
	}
}

func TestQueue_CountSize(t *testing.T) {
	for _, f := range implementations {
		t.Run(f.name, func(t *testing.T) {
			q := mustNew(t, f, 2)

			if q.Count() != 0 {
				t.Errorf("expected Count() = 0, got %d", q.Count())
			}
			if q.Size() != 2 {
				t.Errorf("expected Size() = 2, got %d", q.Size())
			}

			q.Push(1)
			q.Push(2)

			if q.Count() != 2 {
				t.Errorf("expected Count() = 2, got %d", q.Count())
			}
			if q.Size() != 2 {
				t.Errorf("expected Size() = 2 after filling, got %d", q.Size())
			}
		})
	}
}

func TestQueue_Try(t *testing.T) {
	for _, f := range implementations {
		t.Run(f.name, func(t *testing.T) {
			q := mustNew(t, f, 1)

			if v, ok := q.TryPop(); ok || v != 0 {
				t.Errorf("expected TryPop() = (0, false) on empty queue, got (%d, %v)", v, ok)
			}
			if !q.TryPush(42) {
				t.Error("expected TryPush(42) = true on empty queue")
			}
			if q.TryPush(99) {
				t.Error("expected TryPush(99) = false on full queue")
			}
			if q.Count() != 1 {
				t.Errorf("expected Count() = 1, got %d", q.Count())
			}
			if v, ok := q.TryPop(); !ok || v != 42 {
				t.Errorf("expected TryPop() = (42, true), got (%d, %v)", v, ok)
			}
			if _, ok := q.TryPop(); ok {
				t.Error("expected TryPop() = false after draining")
			}
		})
	}
}

func TestBlocking_StringType(t *testing.T) {
	q, err := queue.New[string](4)
	if err != nil {
		t.Fatal(err)
	}

	q.Push("hello")
	q.Push("world")

	if v := q.Pop(); v != "hello" {
		t.Errorf("first Pop() = %q, want hello", v)
	}
	if v := q.Pop(); v != "world" {
		t.Errorf("second Pop() = %q, want world", v)
	}
}

// Items need not be comparable.
func TestBlocking_NonComparableType(t *testing.T) {
	type batch struct {
		ID    int
		Items []string
		Meta  map[string]int
	}

	q, err := queue.New[batch](2, queue.WithLazyBuffer())
	if err != nil {
		t.Fatal(err)
	}

	q.Push(batch{ID: 1, Items: []string{"a"}, Meta: map[string]int{"k": 1}})
	q.Push(batch{ID: 2, Items: []string{"b", "c"}})

	first := q.Pop()
	if first.ID != 1 || len(first.Items) != 1 || first.Meta["k"] != 1 {
		t.Errorf("Pop() = %+v, want ID 1", first)
	}
	second := q.Pop()
	if second.ID != 2 || len(second.Items) != 2 || second.Meta != nil {
		t.Errorf("Pop() = %+v, want ID 2", second)
	}
}

func TestBlocking_NilInterfaceItems(t *testing.T) {
	for _, opts := range [][]queue.Option{nil, {queue.WithLazyBuffer()}} {
		q, err := queue.New[error](2, opts...)
		if err != nil {
			t.Fatal(err)
		}

		q.Push(nil)
		q.Push(errors.New("boom"))

		if got := q.Pop(); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
		if got := q.Pop(); got == nil || got.Error() != "boom" {
			t.Errorf("expected boom, got %v", got)
		}
	}
}

func TestBlocking_PointerType(t *testing.T) {
	q, err := queue.New[*int](4)
	if err != nil {
		t.Fatal(err)
	}

	val := 42
	q.Push(&val)
	if v := q.Pop(); v == nil || *v != 42 {
		t.Error("Pop pointer failed")
	}

	q.Push(nil)
	if v := q.Pop(); v != nil {
		t.Error("Pop nil pointer failed")
	}
}

// Test that every implementation satisfies the interface
func TestQueueInterface(t *testing.T) {
	for _, f := range implementations {
		t.Run(f.name, func(t *testing.T) {
			testQueue[int](t, mustNew(t, f, 8), 42, f.name)
		})
	}
}
