package audio

import (
	"io"
	"testing"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return newSilentSource(44100, 2, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get("nonexistent")
	if ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockDecoder{name: "first"}
	second := &mockDecoder{name: "second"}

	registry.Register("wav", first)
	registry.Register("wav", second)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != second {
		t.Error("Registry.Get() did not return the last registered decoder")
	}
}
