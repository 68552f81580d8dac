// Package codec provides thin encode/decode helpers over structured data
// serializers. JSON is the default; YAML, CBOR and Ion are available through
// the same Codec interface.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"github.com/amazon-ion/ion-go/ion"
	_cbor "github.com/fxamacker/cbor/v2"
	yaml "gopkg.in/yaml.v3"
)

// Codec encodes and decodes values.
type Codec interface {
	// Marshal serializes v into bytes.
	Marshal(v any) ([]byte, error)
	// Unmarshal deserializes data into v (must be a pointer).
	Unmarshal(data []byte, v any) error
	// Name returns the codec identifier used for diagnostics.
	Name() string
}

// JSON encodes compact JSON unless Indent is set. HTML characters are not
// escaped.
type JSON struct {
	Indent string
}

func (c JSON) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if len(c.Indent) > 0 {
		enc.SetIndent("", c.Indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encoder always terminates value with new line
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

func (JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSON) Name() string {
	return FormatJson.String()
}

// YAML uses gopkg.in/yaml.v3.
type YAML struct{}

func (YAML) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAML) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

func (YAML) Name() string {
	return FormatYaml.String()
}

var (
	cachedEncMode     _cbor.EncMode
	cachedDecMode     _cbor.DecMode
	cachedCBORModeErr error
	cachedCBOROnce    sync.Once
)

// cborModes returns cached encoding and decoding modes, initializing them on
// first use.
func cborModes() (_cbor.EncMode, _cbor.DecMode, error) {
	cachedCBOROnce.Do(func() {
		// deterministic output, map keys sorted
		cachedEncMode, cachedCBORModeErr = _cbor.CoreDetEncOptions().EncMode()
		if cachedCBORModeErr != nil {
			return
		}
		decOptions := _cbor.DecOptions{
			// so generic values look the same as after JSON decoding
			DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		}
		cachedDecMode, cachedCBORModeErr = decOptions.DecMode()
	})
	return cachedEncMode, cachedDecMode, cachedCBORModeErr
}

// CBOR uses github.com/fxamacker/cbor/v2 in core deterministic mode.
type CBOR struct{}

func (CBOR) Marshal(v any) ([]byte, error) {
	em, _, err := cborModes()
	if err != nil {
		return nil, err
	}
	return em.Marshal(v)
}

func (CBOR) Unmarshal(data []byte, v any) error {
	_, dm, err := cborModes()
	if err != nil {
		return err
	}
	return dm.Unmarshal(data, v)
}

func (CBOR) Name() string {
	return FormatCbor.String()
}

// Ion produces Amazon Ion text.
type Ion struct{}

func (Ion) Marshal(v any) ([]byte, error) {
	return ion.MarshalText(v)
}

func (Ion) Unmarshal(data []byte, v any) error {
	return ion.Unmarshal(data, v)
}

func (Ion) Name() string {
	return FormatIon.String()
}

// ByFormat returns codec for requested format.
func ByFormat(f Format) (Codec, error) {
	switch f {
	case FormatJson:
		return JSON{}, nil
	case FormatYaml:
		return YAML{}, nil
	case FormatCbor:
		return CBOR{}, nil
	case FormatIon:
		return Ion{}, nil
	default:
		return nil, fmt.Errorf("unsupported codec format: %w", ErrInvalidFormat)
	}
}
