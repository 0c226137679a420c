package imaging

import (
	"fmt"
	"sort"
)

// Store maps string keys to images for the lifetime of a session.
//
// Get returns the live image held under a key; callers that intend to mutate
// independently must Copy it first. Set is an unconditional upsert and
// Remove silently ignores absent keys.
//
// Store does no locking. A session drives it from a single goroutine; shared
// use needs external mutual exclusion per key.
//
// # Example Usage
//
//	store := imaging.NewStore()
//	store.Set(img, "koala")
//	img, err := store.Get("koala")
//	if err != nil {
//	    return err
//	}
//	store.Remove("koala")
type Store struct {
	images map[string]*Image
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		images: make(map[string]*Image),
	}
}

// Get returns the image stored under key, or ErrNotFound.
func (s *Store) Get(key string) (*Image, error) {
	img, ok := s.images[key]
	if !ok {
		return nil, fmt.Errorf("image %q: %w", key, ErrNotFound)
	}
	return img, nil
}

// Set stores img under key, replacing any existing entry.
func (s *Store) Set(img *Image, key string) {
	s.images[key] = img
}

// Remove deletes the entry under key. Absent keys are ignored.
func (s *Store) Remove(key string) {
	delete(s.images, key)
}

// Keys returns every key in ascending order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.images))
	for k := range s.images {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored images.
func (s *Store) Len() int { return len(s.images) }
