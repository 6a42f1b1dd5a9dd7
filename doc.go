// Package mks provides dimensional analysis for physical quantities in the
// MKSA unit system (meter, kilogram, second, ampere, extended with kelvin,
// mole and candela).
//
// # Architecture
//
// The module is organized as a small stack of packages with a strict
// dependency order:
//
//   - unit: the leaf package. A Unit is an immutable vector of integer
//     exponents over the seven base dimensions. All unit algebra (multiply,
//     divide, power, root) is element-wise arithmetic on that vector.
//   - quantity: a Quantity pairs a float64 magnitude with a Unit. Arithmetic
//     on quantities combines magnitudes numerically while delegating unit
//     combination to the unit package, and rejects dimensionally incompatible
//     addition, subtraction and ordering.
//   - constant: a read-only table of physical constants and conversion
//     factors, each pre-tagged with its Unit, plus metric-prefix scale
//     factors. Pure static data.
//   - catalog: user-defined constant catalogs loaded from YAML files.
//   - errors: standard error variables and wrapping helpers shared by all
//     packages.
//
// The cmd/unitcalc binary exposes the constant table and catalog loading on
// the command line.
//
// # Design
//
// Units and quantities are plain immutable value types. Every operation is a
// pure function returning a new value; nothing is mutated in place, so all
// types are safe for concurrent use without locking.
//
// Dimensional mismatches are reported as explicit errors
// (errors.ErrIncompatibleUnits, errors.ErrNonIntegerExponent), never as
// panics. Multiplication, division and integer powers are total; only
// addition, subtraction, ordered comparison and roots can fail.
//
// This module MUST NOT contain:
//   - Automatic conversion between measurement systems. Callers supply
//     magnitudes already converted to MKSA base units, optionally using the
//     conversion factors in the constant package.
//   - Symbolic or arbitrary-precision computation.
//   - Any I/O in the core algebra. The catalog package is the only place
//     that touches the filesystem.
package mks
