// Package state saves and restores processor parameters as a raw sequence
// of little-endian float32 plain values, one per parameter in registration
// order. There is no header, count or version field.
package state

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/justyntemme/blockfx/pkg/framework/param"
)

// ValueSize is the encoded size of one parameter.
const ValueSize = 4

// Manager handles processor state saving and loading
type Manager struct {
	registry *param.Registry
}

// NewManager creates a new state manager
func NewManager(registry *param.Registry) *Manager {
	return &Manager{registry: registry}
}

// Size returns the length in bytes of a saved state.
func (m *Manager) Size() int {
	return m.registry.Count() * ValueSize
}

// Save writes the current plain value of every parameter to w.
func (m *Manager) Save(w io.Writer) error {
	buf := make([]byte, m.Size())
	for i, p := range m.registry.All() {
		binary.LittleEndian.PutUint32(buf[i*ValueSize:], math.Float32bits(float32(p.GetPlainValue())))
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// Load reads one value per parameter from r. Nothing is applied unless
// every value was read; short input yields an error wrapping
// io.ErrUnexpectedEOF. Bytes after the last value are not consumed.
func (m *Manager) Load(r io.Reader) error {
	buf := make([]byte, m.Size())
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("read state (%d bytes expected): %w", len(buf), err)
	}

	for i, p := range m.registry.All() {
		v := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*ValueSize:]))
		p.SetPlainValue(float64(v))
	}
	return nil
}

// Marshal returns the saved state as a byte slice.
func (m *Manager) Marshal() ([]byte, error) {
	var b bytes.Buffer
	if err := m.Save(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Unmarshal restores state from data. Data longer than Size is accepted
// and the excess ignored.
func (m *Manager) Unmarshal(data []byte) error {
	return m.Load(bytes.NewReader(data))
}
