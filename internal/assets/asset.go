// Package assets implements the engine's asset ownership model. A Library
// owns every loaded asset; each asset tracks the live instances handed out
// for it and closing the asset (or the whole library) releases them all.
// Instances are cheap handles for using an asset in multiple places without
// duplicating the underlying data.
package assets

import (
	"errors"
	"fmt"
)

// Kind categorizes a loadable resource.
type Kind int

const (
	KindUnknown Kind = iota
	KindImage
	KindAudio
	KindFont
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindAudio:
		return "audio"
	case KindFont:
		return "font"
	default:
		return "unknown"
	}
}

// ErrClosed is returned when instantiating an asset that has been closed.
var ErrClosed = errors.New("assets: asset is closed")

// Asset is the common surface of all loaded resources.
type Asset interface {
	Key() string
	Kind() Kind
	Path() string

	// NewInstance registers and returns a new usage handle.
	NewInstance() (*Instance, error)

	// Instances returns the number of live instances.
	Instances() int

	// Close releases the asset and every live instance. Closing twice is
	// a no-op.
	Close() error
}

// Instance is a non-owning usage handle for an asset. The asset keeps the
// authoritative set of live instances; releasing an instance unregisters
// it, and closing the asset releases all of them.
type Instance struct {
	owner *meta
}

// Asset returns the key of the owning asset.
func (in *Instance) Asset() string {
	return in.owner.key
}

// Release unregisters the instance from its asset. Releasing twice is a
// no-op.
func (in *Instance) Release() {
	delete(in.owner.instances, in)
}

// meta carries the state shared by all asset kinds.
type meta struct {
	key       string
	kind      Kind
	path      string
	instances map[*Instance]struct{}
	closed    bool
}

func newMeta(key string, kind Kind, path string) meta {
	return meta{
		key:       key,
		kind:      kind,
		path:      path,
		instances: make(map[*Instance]struct{}),
	}
}

func (m *meta) Key() string {
	return m.key
}

func (m *meta) Kind() Kind {
	return m.kind
}

func (m *meta) Path() string {
	return m.path
}

func (m *meta) NewInstance() (*Instance, error) {
	if m.closed {
		return nil, fmt.Errorf("%w: %s %q", ErrClosed, m.kind, m.key)
	}
	in := &Instance{owner: m}
	m.instances[in] = struct{}{}
	return in, nil
}

func (m *meta) Instances() int {
	return len(m.instances)
}

func (m *meta) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	for in := range m.instances {
		delete(m.instances, in)
	}
	return nil
}
