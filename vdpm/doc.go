// Package vdpm implements the view-dependent progressive mesh engine: a
// builder that repeatedly collapses edges into a binary vertex-split
// forest, a legality gate, local refine/coarsen operators, and drive loops
// that sweep the active front toward a region-of-interest fixed point.
//
// Engine is not safe for concurrent use — unlike core.Graph's
// RWMutex-guarded methods, every Engine operation assumes single-owner,
// single-goroutine access and runs to completion before returning.
package vdpm

import "errors"

// ErrNoMesh is returned by NewEngine when no mesh was supplied via
// WithMesh.
var ErrNoMesh = errors.New("vdpm: no mesh configured")

// ErrNotInitialized is returned by CreatePM when the engine's selector or
// approximators failed Init.
var ErrNotInitialized = errors.New("vdpm: engine failed to initialize")

// ErrAlreadyBuilt is returned by CreatePM if called more than once on the
// same Engine.
var ErrAlreadyBuilt = errors.New("vdpm: CreatePM already ran on this engine")

// ErrMeshCapability is returned by AddNodes when the configured mesh does
// not implement the dart-enumeration capability the builder needs.
var ErrMeshCapability = errors.New("vdpm: mesh does not support dart enumeration")

// errForestInconsistent marks a collapse candidate whose side-dart
// vertices have no corresponding forest node, which would indicate
// AddNodes was skipped or the mesh was mutated outside the engine. Kept
// unexported: callers only need to know the collapse was skipped, the
// same way any other illegal-op skip is silent per spec §7.
var errForestInconsistent = errors.New("vdpm: no forest node for collapse candidate")

// Logger receives diagnostic lines during construction and the rare
// embedding-inconsistency path in Coarsen. A nil Logger is a safe no-op,
// matching spec's "debug-print routed through a caller-supplied sink"
// design note rather than pulling in a structured-logging dependency.
type Logger func(format string, args ...any)
