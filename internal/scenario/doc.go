// Package scenario defines the network-simulation test-case document and the
// rules that apply to it.
//
// A Document has six sections (cell, subscriber, userPlane, traffic,
// mobility, settings) and a step cursor. Sections are never modified in
// place: callers build a Patch for one section and apply it with
// ApplySectionUpdate, which returns a new document. Lists inside a patch
// replace the stored list wholesale.
//
// # Variants
//
// Two fields are modelled as closed variants instead of optional fields:
//   - DataPayload is RawThroughput (IPERF, carries a transport protocol) or
//     VoiceCall (VOLTE/VILTE, carries a call type).
//   - RangeRef is SpecificRange(id) or AllRanges(); the zero value targets
//     nothing and fails validation.
//
// # Validation
//
// CheckSection lists every problem with a section as *Error values of type
// ErrTypeValidation. SectionValid reduces that to the boolean used to gate
// forward navigation. Validation never mutates the document.
//
// # Persistence Format
//
// Encode writes YAML. Decode accepts YAML or JSON (including records written
// by the earlier browser form, whose range sentinels were plain strings) and
// replaces missing sections with defaults rather than failing.
package scenario
