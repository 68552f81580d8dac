package codec

// Serialization format of a codec.
// ENUM(json, yaml, cbor, ion)
type Format int

// Binary returns true when encoded data is not printable text.
func (f Format) Binary() bool {
	return f == FormatCbor
}
