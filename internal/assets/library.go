package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest is the YAML description of a library's contents. Paths are
// relative to the manifest file.
type Manifest struct {
	Images []ManifestEntry `yaml:"images"`
	Audio  []ManifestEntry `yaml:"audio"`
}

// ManifestEntry names one asset and where to load it from.
type ManifestEntry struct {
	Key  string `yaml:"key"`
	Path string `yaml:"path"`
}

// Library owns every loaded asset. Lookups hand out the asset itself;
// callers take instances from it and the library's Close tears everything
// down.
type Library struct {
	images map[string]*Image
	audio  map[string]*Audio
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{
		images: make(map[string]*Image),
		audio:  make(map[string]*Audio),
	}
}

// LoadLibrary reads a manifest and loads every asset it names. A missing
// or unreadable asset fails the whole load; already-loaded assets are
// released before returning the error.
func LoadLibrary(manifestPath string) (*Library, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read manifest %s: %w", manifestPath, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: cannot parse manifest %s: %w", manifestPath, err)
	}

	base := filepath.Dir(manifestPath)
	lib := NewLibrary()

	for _, e := range m.Images {
		img, err := LoadImage(e.Key, filepath.Join(base, e.Path))
		if err != nil {
			lib.Close()
			return nil, err
		}
		if err := lib.AddImage(img); err != nil {
			lib.Close()
			return nil, err
		}
	}
	for _, e := range m.Audio {
		a, err := LoadAudio(e.Key, filepath.Join(base, e.Path))
		if err != nil {
			lib.Close()
			return nil, err
		}
		if err := lib.AddAudio(a); err != nil {
			lib.Close()
			return nil, err
		}
	}

	return lib, nil
}

// AddImage registers a loaded image under its key. Duplicate keys fail.
func (l *Library) AddImage(img *Image) error {
	if _, exists := l.images[img.Key()]; exists {
		return fmt.Errorf("assets: duplicate image key %q", img.Key())
	}
	l.images[img.Key()] = img
	return nil
}

// AddAudio registers a loaded audio asset under its key. Duplicate keys fail.
func (l *Library) AddAudio(a *Audio) error {
	if _, exists := l.audio[a.Key()]; exists {
		return fmt.Errorf("assets: duplicate audio key %q", a.Key())
	}
	l.audio[a.Key()] = a
	return nil
}

// Image looks up an image by key.
func (l *Library) Image(key string) (*Image, bool) {
	img, ok := l.images[key]
	return img, ok
}

// Audio looks up an audio asset by key.
func (l *Library) Audio(key string) (*Audio, bool) {
	a, ok := l.audio[key]
	return a, ok
}

// Len returns the total number of owned assets.
func (l *Library) Len() int {
	return len(l.images) + len(l.audio)
}

// Close releases every owned asset and their live instances.
func (l *Library) Close() {
	for key, img := range l.images {
		img.Close() //nolint:errcheck
		delete(l.images, key)
	}
	for key, a := range l.audio {
		a.Close() //nolint:errcheck
		delete(l.audio, key)
	}
}
