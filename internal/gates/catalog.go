package gates

import "github.com/qirkit/qirkit/internal/ir"

// DefaultGateSet lists every registered gate generator in catalog order.
var DefaultGateSet = []*ir.Generator{
	GeneratorI, GeneratorH,
	GeneratorX, GeneratorX90, GeneratorMX90,
	GeneratorY, GeneratorY90, GeneratorMY90,
	GeneratorZ, GeneratorS, GeneratorSdag, GeneratorT, GeneratorTdag,
	GeneratorRx, GeneratorRy, GeneratorRz,
	GeneratorCNOT, GeneratorCZ, GeneratorCR, GeneratorCRk,
	GeneratorSWAP, GeneratorSqrtSWAP, GeneratorCCZ,
}

// DefaultMeasurementSet lists the registered non-gate generators.
var DefaultMeasurementSet = []*ir.Generator{
	GeneratorMeasureZ, GeneratorMeasure, GeneratorReset,
}

// Aliases maps alternative spellings onto catalog generators.
var Aliases = map[string]*ir.Generator{
	"Hadamard": GeneratorH,
	"Identity": GeneratorI,
}

var catalog = buildCatalog()

func buildCatalog() map[string]*ir.Generator {
	m := make(map[string]*ir.Generator)
	for _, g := range DefaultGateSet {
		m[g.Name] = g
	}
	for _, g := range DefaultMeasurementSet {
		m[g.Name] = g
	}
	for name, g := range Aliases {
		m[name] = g
	}
	return m
}

// ByName looks a generator up by catalog name or alias.
func ByName(name string) (*ir.Generator, bool) {
	g, ok := catalog[name]
	return g, ok
}
