package calendars

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DataPayload is data loaded for the statically known calendar C.
type DataPayload[C Calendar] struct {
	key  SchemaKey
	data []byte
}

// Key returns the schema key the payload was loaded under.
func (p DataPayload[C]) Key() SchemaKey {
	return p.key
}

func (p DataPayload[C]) Bytes() []byte {
	return p.data
}

// Erase drops the static calendar type. The payload bytes move to the erased
// value as-is; nothing is copied.
func (p DataPayload[C]) Erase() ErasedPayload {
	return ErasedPayload{key: p.key, data: p.data}
}

// ErasedPayload is loaded calendar data tagged by its schema key but carrying
// no static calendar type. It is created once per load call and the caller
// owns it; it is never mutated by this package.
type ErasedPayload struct {
	key  SchemaKey
	data []byte
}

func (p ErasedPayload) Key() SchemaKey {
	return p.key
}

// Bytes returns the payload contents without copying.
func (p ErasedPayload) Bytes() []byte {
	return p.data
}

// IsZero reports whether p holds no payload.
func (p ErasedPayload) IsZero() bool {
	return p.key == "" && p.data == nil
}

// Decode unmarshals the payload into out. JSON documents are decoded with
// encoding/json, anything else as YAML.
func (p ErasedPayload) Decode(out any) error {
	trimmed := bytes.TrimSpace(p.data)
	if len(trimmed) == 0 {
		return fmt.Errorf("%w: empty payload for %s", ErrPayloadMismatch, p.key)
	}

	if trimmed[0] == '{' || trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, out); err != nil {
			return fmt.Errorf("calendars: decode %s: %w", p.key, err)
		}
		return nil
	}

	if err := yaml.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("calendars: decode %s: %w", p.key, err)
	}
	return nil
}

// Downcast restores the static calendar type of an erased payload. It fails
// when the payload was loaded for a calendar that does not share C's data.
func Downcast[C Calendar](p ErasedPayload) (DataPayload[C], error) {
	var cal C
	if p.key.Calendar() != SkeletonIdentifier(cal.Kind()) {
		return DataPayload[C]{}, fmt.Errorf("%w: %s is not %s data", ErrPayloadMismatch, p.key, cal.Kind())
	}
	return DataPayload[C]{key: p.key, data: p.data}, nil
}
