package codec

import "fmt"

// ParseError is returned when data could not be decoded.
type ParseError struct {
	Codec string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse %s data: %v", e.Codec, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConstructionError is returned when decode target could not be created.
type ConstructionError struct {
	Type   string
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("unable to construct %s: %s", e.Type, e.Reason)
}
