package codec

import (
	"fmt"
	"reflect"
)

// Encode returns compact JSON representation of v.
//
//	Encode([]int{1, 2, 3}) => "[1,2,3]"
func Encode(v any) (string, error) {
	return EncodeWith(JSON{}, v)
}

// Decode creates a new value with factory and overlays every field present
// in JSON text on top of it. Fields absent from text keep whatever defaults
// factory has set.
func Decode[T any](factory func() T, text string) (T, error) {
	return DecodeWith(JSON{}, factory, text)
}

// EncodeWith encodes v with specified codec.
func EncodeWith(c Codec, v any) (string, error) {
	data, err := c.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("unable to encode %s data: %w", c.Name(), err)
	}
	return string(data), nil
}

// DecodeWith is Decode for arbitrary codec.
func DecodeWith[T any](c Codec, factory func() T, text string) (T, error) {
	var zero T

	if factory == nil {
		return zero, &ConstructionError{Type: typeName[T](), Reason: "no factory provided"}
	}
	inst := factory()

	target, err := decodeTarget(&inst)
	if err != nil {
		return zero, err
	}
	if err := c.Unmarshal([]byte(text), target); err != nil {
		return zero, &ParseError{Codec: c.Name(), Err: err}
	}
	return inst, nil
}

// decodeTarget returns pointer codec should decode into. When factory
// produces pointer it is used directly so the caller gets back the very same
// instance, otherwise address of the local copy is used. Value behind an
// interface is not addressable, only pointers and maps can be filled in place
// there.
func decodeTarget[T any](inst *T) (any, error) {
	v := reflect.ValueOf(inst).Elem()
	if v.Kind() != reflect.Interface {
		if v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return nil, &ConstructionError{Type: typeName[T](), Reason: "factory returned nil pointer"}
			}
			return v.Interface(), nil
		}
		return inst, nil
	}

	if v.IsNil() {
		return nil, &ConstructionError{Type: typeName[T](), Reason: "factory returned nil"}
	}
	v = v.Elem()
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return nil, &ConstructionError{Type: typeName[T](), Reason: "factory returned nil pointer"}
		}
		return v.Interface(), nil
	case reflect.Map:
		if v.IsNil() {
			return nil, &ConstructionError{Type: typeName[T](), Reason: "factory returned nil map"}
		}
		// new variable shares the map, codecs add keys to existing map
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		return p.Interface(), nil
	}
	return nil, &ConstructionError{Type: typeName[T](), Reason: fmt.Sprintf("factory returned %s, pointer or map is required", v.Type())}
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
