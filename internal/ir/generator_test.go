package ir

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGeneratorAttachesMetadata(t *testing.T) {
	gen := &Generator{Name: "Rx"}
	gen.Build = func(args ...Expression) (Statement, error) {
		q := args[0].(Qubit)
		theta := args[1].(Float)
		g := NewBlochSphereRotation(q, XAxis, theta.Value, 0)
		g.SetGenerator(gen, args...)
		return g, nil
	}

	q := Qubit{Index: 0}
	theta := Float{Value: math.Pi / 2}
	s, err := gen.Build(q, theta)
	require.NoError(t, err)

	g := s.(*BlochSphereRotation)
	assert.False(t, g.IsAnonymous())
	assert.Equal(t, "Rx", g.Name())
	assert.Same(t, gen, g.Generator())
	assert.Equal(t, []Expression{q, theta}, g.Arguments())
}

func TestGeneratorRoundTrip(t *testing.T) {
	gen := &Generator{Name: "Rz"}
	gen.Build = func(args ...Expression) (Statement, error) {
		q := args[0].(Qubit)
		theta := args[1].(Float)
		g := NewBlochSphereRotation(q, ZAxis, theta.Value, 0)
		g.SetGenerator(gen, args...)
		return g, nil
	}

	first, err := gen.Build(Qubit{Index: 1}, Float{Value: 0.25})
	require.NoError(t, err)
	g := first.(*BlochSphereRotation)

	second, err := g.Generator().Build(g.Arguments()...)
	require.NoError(t, err)

	eq, err := first.Equal(second)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestMetadataExcludedFromEquality(t *testing.T) {
	gen := &Generator{Name: "X"}

	named := NewBlochSphereRotation(Qubit{Index: 0}, XAxis, math.Pi, math.Pi/2)
	named.SetGenerator(gen, Qubit{Index: 0})
	anonymous := NewBlochSphereRotation(Qubit{Index: 0}, XAxis, math.Pi, math.Pi/2)

	eq, err := named.Equal(anonymous)
	require.NoError(t, err)
	assert.True(t, eq)
	assert.NotEqual(t, named.Name(), anonymous.Name())
}
