package command

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/imgproc/internal/imaging"
)

func TestLoadSave_PPM(t *testing.T) {
	dir := t.TempDir()
	src := seededImage(t, 5, 4, 3)
	store := newStore(t, map[string]*imaging.Image{"seed": src})

	out := filepath.Join(dir, "seed.ppm")
	save := NewSave(out, "seed")
	saved, err := save.Apply(store)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if saved != src {
		t.Error("Save should return the stored image")
	}
	if save.Destination() != out {
		t.Errorf("Destination: got %q, want %q", save.Destination(), out)
	}
	if store.Len() != 1 {
		t.Errorf("Save modified the store: %d entries", store.Len())
	}

	load := NewLoad(out, "copy")
	loaded, err := load.Apply(store)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if load.Destination() != "copy" {
		t.Errorf("Destination: got %q, want copy", load.Destination())
	}
	if !loaded.Equal(src) {
		t.Error("loaded image differs from saved image")
	}
	if mustGet(t, store, "copy") != loaded {
		t.Error("Load did not store the image")
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.ppm")
	if err := os.WriteFile(bad, []byte("P3 1 1 255 0 0"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"no extension", filepath.Join(dir, "seed"), imaging.ErrMissingExtension},
		{"unknown extension", filepath.Join(dir, "seed.xcf"), imaging.ErrUnsupportedFileType},
		{"absent file", filepath.Join(dir, "absent.ppm"), imaging.ErrNotFound},
		{"truncated file", bad, imaging.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := imaging.NewStore()
			if _, err := NewLoad(tt.path, "k").Apply(store); !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
			if store.Len() != 0 {
				t.Error("failed load modified the store")
			}
		})
	}
}

func TestSave_ChecksExtensionFirst(t *testing.T) {
	store := imaging.NewStore()
	if _, err := NewSave("out", "missing-key").Apply(store); !errors.Is(err, imaging.ErrMissingExtension) {
		t.Errorf("got %v, want ErrMissingExtension", err)
	}
}

func TestSave_NarrowImage(t *testing.T) {
	store := newStore(t, map[string]*imaging.Image{"narrow": imaging.NewBlank(2, 2, 1, 255)})
	path := filepath.Join(t.TempDir(), "narrow.ppm")

	if _, err := NewSave(path, "narrow").Apply(store); !errors.Is(err, imaging.ErrUnsupportedImageType) {
		t.Errorf("got %v, want ErrUnsupportedImageType", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("a file was written for an unsupported image")
	}
}
