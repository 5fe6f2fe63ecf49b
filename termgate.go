// Package termgate turns raw text extracted from scanned and typed technical
// documents into clean, citable terminology entries. Candidate terms pass
// through normalization, extraction, and an ordered chain of validation
// rules; anything structurally invalid or corrupted is rejected with a
// traceable reason before it reaches storage.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, postgres/, gemini/).
package termgate
