// Package convert implements the low-level value conversion layer shared by
// the MAS and TAS codecs.
//
// Decoding operates on the untyped value trees produced by encoding/json
// (with UseNumber), gopkg.in/yaml.v3, or fxamacker/cbor: maps, slices,
// numbers, strings, booleans and nil. Every converter takes the dotted path
// from the document root so failures are locatable without re-running the
// decode.
//
// # Numeric strictness
//
// JSON conflates booleans and numbers in some dynamic producers. The
// converters here never accept a boolean where a number is expected, and
// never accept a float with a fractional part where an integer is expected.
//
// # Absent vs null
//
// The MAS wire format omits absent optional fields entirely. Decoders treat
// an explicit null and a missing key as equivalent inputs, but encoders
// always produce the omitted form. The ordered Map type preserves field
// declaration order on output.
package convert
