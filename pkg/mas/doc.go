// Package mas implements the Magnetic Agnostic Structure document codec.
//
// MAS is a JSON interchange format for magnetic component designs: the
// design requirements and operating points that describe what a magnetic
// must do, the constructed magnetic (core, gapping, coil, wire) that does
// it, and the computed outputs (losses, inductance) that describe how well.
//
// The codec converts between the loosely-typed, optional-field-heavy wire
// documents and a strongly-typed immutable object graph, with exact
// round-trip fidelity:
//
//   - decoding validates types strictly (a boolean never satisfies a
//     numeric field, enum strings must match a closed literal table
//     exactly) and fails fast with the full dotted path to the offending
//     value;
//   - encoding walks the graph in declared field order and omits every
//     absent optional, reproducing the compact default-free form the
//     format requires.
//
// # Entry points
//
// FromJSON / ToJSON are the strict pair. FromYAML accepts the same schema
// in YAML. FromCBOR / ToCBOR carry the document in deterministic CBOR for
// compact storage and transport. Autocomplete is a separate partial-decode
// entry point that records absent required fields as pending markers
// instead of failing, for upstream tooling that fills gaps.
//
// All operations are pure functions over immutable input; decoding
// independent documents from multiple goroutines needs no coordination.
package mas
