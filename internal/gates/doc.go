// Package gates provides the default named gate, measurement, and reset
// catalog. Every constructor attaches generator metadata to the node it
// builds, so re-invoking the generator with the node's stored arguments
// reconstructs an equal node. The catalog is also the lookup surface for
// loaders that resolve statements by name.
package gates
