// Package tas implements the codec for Topology Agnostic Structure
// documents, the simplified sibling schema of MAS scoped to basic DC-DC
// converters.
//
// TAS has looser decode semantics than MAS: every field carries a
// schema default and absence never fails a decode, so the strict vs
// autocomplete split does not exist here. Type errors still fail, with
// the same error taxonomy as package mas. Free-text metadata fields
// treat the empty string as absent and omit it on encode.
package tas
