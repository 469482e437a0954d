package cache

import "testing"

func TestLRUCache_PutGet(t *testing.T) {
	c := NewLRUCache[string, int](DefaultConfig())
	c.Put("a", 1)
	v, ok := c.Get("a")
	if !ok || v != 1 {
		t.Errorf("Get(a) = (%d, %v), want (1, true)", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss for absent key")
	}
}

func TestLRUCache_EvictsOldestOverCapacity(t *testing.T) {
	c := NewLRUCache[int, int](Config{MaxSize: 2})
	c.Put(1, 1)
	c.Put(2, 2)
	c.Put(3, 3) // evicts 1, the least recently used

	if _, ok := c.Get(1); ok {
		t.Error("expected key 1 to have been evicted")
	}
	if _, ok := c.Get(2); !ok {
		t.Error("expected key 2 to still be present")
	}
	if _, ok := c.Get(3); !ok {
		t.Error("expected key 3 to still be present")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestLRUCache_GetRefreshesRecency(t *testing.T) {
	c := NewLRUCache[int, int](Config{MaxSize: 2})
	c.Put(1, 1)
	c.Put(2, 2)
	c.Get(1) // touch 1 so 2 becomes least-recently-used
	c.Put(3, 3)

	if _, ok := c.Get(2); ok {
		t.Error("expected key 2 to have been evicted as least recently used")
	}
	if _, ok := c.Get(1); !ok {
		t.Error("expected key 1 to survive (recently touched)")
	}
}

func TestLRUCache_RemoveAndClear(t *testing.T) {
	c := NewLRUCache[string, int](DefaultConfig())
	c.Put("a", 1)
	c.Put("b", 2)

	c.Remove("a")
	if _, ok := c.Get("a"); ok {
		t.Error("expected key a to be removed")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", c.Len())
	}
}

func TestLRUCache_Stats(t *testing.T) {
	c := NewLRUCache[string, int](Config{MaxSize: 1})
	c.Put("a", 1)
	c.Get("a")        // hit
	c.Get("missing")  // miss
	c.Put("b", 2)     // evicts "a"

	stats := c.Stats()
	if stats.Hits != 1 {
		t.Errorf("Hits = %d, want 1", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Misses = %d, want 1", stats.Misses)
	}
	if stats.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", stats.Evictions)
	}
	if stats.MaxSize != 1 {
		t.Errorf("MaxSize = %d, want 1", stats.MaxSize)
	}
}
