// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/ik5/picosfx/internal/audiotest"
)

type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

type failingDecoder struct{}

func (failingDecoder) Decode(io.Reader) (Source, error) {
	return nil, errors.New("decode failed")
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

	if _, ok := registry.Get("flac"); ok {
		t.Error("Registry.Get() returned ok=true for unregistered format")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockDecoder{name: "first"}
	second := &mockDecoder{name: "second"}

	registry.Register("wav", first, []byte("RIFF"))
	registry.Register("wav", second, []byte("RIFX"))

	got, _ := registry.Get("wav")
	if got != second {
		t.Error("Registry.Get() did not return the overwritten decoder")
	}

	if formats := registry.Formats(); !slices.Equal(formats, []string{"wav"}) {
		t.Errorf("Formats() = %v, want [wav]", formats)
	}

	// the magic of the replaced entry is gone too
	if _, _, ok := registry.Detect([]byte("RIFF....")); ok {
		t.Error("Detect() matched magic of a replaced decoder")
	}
	if name, _, ok := registry.Detect([]byte("RIFX....")); !ok || name != "wav" {
		t.Errorf("Detect() = %q, %v, want wav, true", name, ok)
	}
}

func TestRegistry_Detect(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{}, []byte("RIFF"))
	registry.Register("mp3", &mockDecoder{}, []byte("ID3"), []byte{0xFF, 0xFB})
	registry.Register("ogg", &mockDecoder{}, []byte("OggS"))
	registry.Register("raw", failingDecoder{})

	tests := []struct {
		name   string
		data   []byte
		want   string
		wantOK bool
	}{
		{"wav", []byte("RIFF\x24\x00\x00\x00WAVE"), "wav", true},
		{"mp3 tag", []byte("ID3\x04\x00"), "mp3", true},
		{"mp3 sync", []byte{0xFF, 0xFB, 0x90, 0x00}, "mp3", true},
		{"ogg", []byte("OggS\x00\x02"), "ogg", true},
		{"unknown", []byte("MThd"), "", false},
		{"too short", []byte("Og"), "", false},
		{"empty", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			name, d, ok := registry.Detect(tt.data)
			if ok != tt.wantOK || name != tt.want {
				t.Fatalf("Detect() = %q, %v, want %q, %v", name, ok, tt.want, tt.wantOK)
			}
			if ok && d == nil {
				t.Error("Detect() returned a nil decoder")
			}
		})
	}
}

func TestRegistry_FormatsOrder(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, name := range []string{"wav", "mp3", "ogg", "aiff", "flac"} {
		registry.Register(name, &mockDecoder{name: name})
	}

	want := []string{"wav", "mp3", "ogg", "aiff", "flac"}
	if got := registry.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "test"}

	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("format", decoder, []byte("FMT"))
			done <- true
		}()
	}
	for range 10 {
		go func() {
			_, _ = registry.Get("format")
			_, _, _ = registry.Detect([]byte("FMT1"))
			done <- true
		}()
	}
	for range 20 {
		<-done
	}

	got, ok := registry.Get("format")
	if !ok || got != decoder {
		t.Error("Registry returned wrong decoder after concurrent operations")
	}
	if n := len(registry.Formats()); n != 1 {
		t.Errorf("len(Formats()) = %d, want 1", n)
	}
}

func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{})

	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get("wav")
	}
}

func BenchmarkRegistry_Detect(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{}, []byte("RIFF"))
	registry.Register("ogg", &mockDecoder{}, []byte("OggS"))
	data := []byte("OggS\x00\x02\x00\x00")

	b.ReportAllocs()

	for b.Loop() {
		_, _, _ = registry.Detect(data)
	}
}
