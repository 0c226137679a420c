package imaging

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewStore(t *testing.T) {
	s := NewStore()
	if s == nil {
		t.Fatal("NewStore returned nil")
	}
	if s.Len() != 0 {
		t.Errorf("Len: got %d, want 0", s.Len())
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := NewStore()
	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get: got %v, want ErrNotFound", err)
	}
}

func TestStore_SetGet(t *testing.T) {
	s := NewStore()
	img := NewBlank(2, 2, 3, 255)
	s.Set(img, "a")

	got, err := s.Get("a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != img {
		t.Error("Get did not return the stored image")
	}
}

func TestStore_SetOverwrites(t *testing.T) {
	s := NewStore()
	first := NewBlank(2, 2, 3, 255)
	second := NewBlank(7, 1, 1, 9)
	s.Set(first, "a")
	s.Set(second, "a")

	got, err := s.Get("a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != second {
		t.Error("Set did not overwrite the existing entry")
	}
	if s.Len() != 1 {
		t.Errorf("Len: got %d, want 1", s.Len())
	}
}

func TestStore_Remove(t *testing.T) {
	s := NewStore()
	s.Set(NewBlank(1, 1, 3, 255), "a")
	s.Remove("a")

	if _, err := s.Get("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Remove: got %v, want ErrNotFound", err)
	}

	// Should not panic
	s.Remove("a")
	s.Remove("never-there")
}

func TestStore_Keys(t *testing.T) {
	s := NewStore()
	for _, k := range []string{"koala", "apple", "moon"} {
		s.Set(NewBlank(1, 1, 3, 255), k)
	}

	if diff := cmp.Diff([]string{"apple", "koala", "moon"}, s.Keys()); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
}
