package builder

import "testing"

func TestScopedMapShadowsAndRestoresOnPop(t *testing.T) {
	m := newScopedMap[string, int]()
	m.Push()
	m.Insert("a", 1)

	if v, ok := m.Get("a"); !ok || v != 1 {
		t.Fatalf("expected a=1, got %v %v", v, ok)
	}

	m.Push()
	m.Insert("a", 2)
	if v, _ := m.Get("a"); v != 2 {
		t.Fatalf("expected inner scope to shadow, got %v", v)
	}

	m.Pop()
	if v, _ := m.Get("a"); v != 1 {
		t.Fatalf("expected outer scope restored, got %v", v)
	}
}

func TestScopedMapFlattenMergesOuterToInner(t *testing.T) {
	m := newScopedMap[string, int]()
	m.Push()
	m.Insert("a", 1)
	m.Push()
	m.Insert("a", 2)
	m.Insert("b", 3)

	flat := m.Flatten()
	if flat["a"] != 2 {
		t.Fatalf("expected inner value to win in flatten, got %v", flat["a"])
	}
	if flat["b"] != 3 {
		t.Fatalf("expected b=3, got %v", flat["b"])
	}
}

func TestScopedMapGetMissesReturnFalse(t *testing.T) {
	m := newScopedMap[string, int]()
	m.Push()
	if _, ok := m.Get("missing"); ok {
		t.Fatal("expected missing key to report false")
	}
}
