// Package catalog loads user-defined constant catalogs from YAML files.
//
// A catalog extends the built-in constant table with domain constants the
// table does not carry, each declared with a value in MKSA base units and a
// sparse dimension-exponent map:
//
//	name: astro
//	constants:
//	  - name: earth_mass
//	    value: 5.972e24
//	    unit: {kg: 1}
//	    description: Mass of the Earth
//	  - name: hubble_constant
//	    value: 2.2e-18
//	    unit: {s: -1}
//
// Catalogs are validated on load (unknown dimension symbols, duplicate or
// empty names fail with errors.ErrInvalidCatalog) and are read-only
// afterwards. The exponent-map form is deliberate: the bracketed rendering
// produced by unit.String is display-only and is never parsed back.
package catalog
