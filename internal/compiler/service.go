package compiler

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/qirkit/qirkit/internal/ir"
)

// DefaultCacheSize is the unitary cache capacity used by Install.
const DefaultCacheSize = 256

// Service implements both collaborator contracts of the gate equivalence
// oracle (ir.CircuitCompiler and ir.Reindexer), with an LRU cache over
// compiled unitaries keyed by circuit fingerprint.
type Service struct {
	cache *lru.Cache[string, ir.Matrix]
}

// NewService builds a Service with the given unitary cache capacity.
// A capacity of 0 disables caching.
func NewService(cacheSize int) (*Service, error) {
	s := &Service{}
	if cacheSize > 0 {
		cache, err := lru.New[string, ir.Matrix](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating unitary cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// Compile implements ir.CircuitCompiler.
func (s *Service) Compile(statements []ir.Statement, qubitCount int) (ir.Matrix, error) {
	if s.cache == nil {
		return CircuitMatrix(statements, qubitCount)
	}
	key := Fingerprint(statements, qubitCount)
	if m, ok := s.cache.Get(key); ok {
		return m, nil
	}
	m, err := CircuitMatrix(statements, qubitCount)
	if err != nil {
		return ir.Matrix{}, err
	}
	s.cache.Add(key, m)
	return m, nil
}

// Reindex implements ir.Reindexer.
func (s *Service) Reindex(statements []ir.Statement, mapping map[int]int) ([]ir.Statement, error) {
	return ReindexStatements(statements, mapping)
}

// Install registers a default Service as the IR's equivalence services.
// Call once at startup before any oracle-backed gate equality check.
func Install() error {
	s, err := NewService(DefaultCacheSize)
	if err != nil {
		return err
	}
	ir.RegisterEquivalenceServices(ir.EquivalenceServices{Compiler: s, Reindexer: s})
	return nil
}
