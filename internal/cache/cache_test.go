package cache

import (
	"fmt"
	"testing"

	"fzmatch/pkg/fuzzy"
)

func TestPutGetRoundTrip(t *testing.T) {
	c := New(4)
	c.Put("amor", "app/models/order.rb", 42)
	got, ok := c.Get("amor", "app/models/order.rb")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != 42 {
		t.Errorf("got %v, want 42", got)
	}
}

func TestGetMissReturnsFalse(t *testing.T) {
	c := New(4)
	if _, ok := c.Get("amor", "anything"); ok {
		t.Error("expected cache miss on empty cache")
	}
}

func TestEvictionIsFIFO(t *testing.T) {
	c := New(2)
	c.Put("a", "x", fuzzy.Score(1))
	c.Put("a", "y", fuzzy.Score(2))
	c.Put("a", "z", fuzzy.Score(3)) // evicts (a, x)

	if _, ok := c.Get("a", "x"); ok {
		t.Error("expected (a, x) to have been evicted")
	}
	if got, ok := c.Get("a", "y"); !ok || got != 2 {
		t.Errorf("expected (a, y) to survive with score 2, got %v, %v", got, ok)
	}
	if got, ok := c.Get("a", "z"); !ok || got != 3 {
		t.Errorf("expected (a, z) to survive with score 3, got %v, %v", got, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestDifferentNeedlesDoNotCollide(t *testing.T) {
	c := New(8)
	for i, needle := range []string{"ab", "ba", "a", "b"} {
		c.Put(needle, "haystack", fuzzy.Score(i))
	}
	for i, needle := range []string{"ab", "ba", "a", "b"} {
		got, ok := c.Get(needle, "haystack")
		if !ok || got != fuzzy.Score(i) {
			t.Errorf("needle %q: got %v, %v, want %d, true", needle, got, ok, i)
		}
	}
}

func TestUpdatingAnExistingKeyDoesNotEvict(t *testing.T) {
	c := New(2)
	c.Put("a", "x", fuzzy.Score(1))
	c.Put("a", "y", fuzzy.Score(2))
	c.Put("a", "x", fuzzy.Score(99)) // update, not insert

	if got, ok := c.Get("a", "x"); !ok || got != 99 {
		t.Errorf("expected updated score 99, got %v, %v", got, ok)
	}
	if _, ok := c.Get("a", "y"); !ok {
		t.Error("expected (a, y) to still be present after an update, not an insert")
	}
}

func TestManyDistinctKeys(t *testing.T) {
	c := New(1024)
	for i := 0; i < 1024; i++ {
		c.Put("needle", fmt.Sprintf("haystack-%d", i), fuzzy.Score(i))
	}
	if c.Len() != 1024 {
		t.Errorf("Len() = %d, want 1024", c.Len())
	}
}
