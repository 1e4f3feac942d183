package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureEqual(t *testing.T) {
	q0, q1 := Qubit{Index: 0}, Qubit{Index: 1}
	b0, b1 := Bit{Index: 0}, Bit{Index: 1}

	m := NewMeasure(q0, b0, ZAxis)

	eq, err := m.Equal(NewMeasure(q0, b1, ZAxis))
	require.NoError(t, err)
	assert.True(t, eq, "destination bit does not participate in equality")

	eq, err = m.Equal(NewMeasure(q1, b0, ZAxis))
	require.NoError(t, err)
	assert.False(t, eq)

	eq, err = m.Equal(NewMeasure(q0, b0, XAxis))
	require.NoError(t, err)
	assert.False(t, eq)

	eq, err = m.Equal(NewReset(q0))
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestMeasureOperands(t *testing.T) {
	m := NewMeasure(Qubit{Index: 3}, Bit{Index: 1}, ZAxis)
	assert.Equal(t, []Qubit{{Index: 3}}, m.QubitOperands())
	assert.Equal(t, []Bit{{Index: 1}}, m.BitOperands())
	assert.True(t, m.IsAbstract())
	assert.Equal(t, "<abstract_measurement>", m.Name())
}

func TestResetEqual(t *testing.T) {
	q0, q1 := Qubit{Index: 0}, Qubit{Index: 1}

	eq, err := NewReset(q0).Equal(NewReset(q0))
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = NewReset(q0).Equal(NewReset(q1))
	require.NoError(t, err)
	assert.False(t, eq)

	assert.True(t, NewReset(q0).IsAbstract())
	assert.Equal(t, "<abstract_reset>", NewReset(q0).Name())
}

func TestNewComment(t *testing.T) {
	c, err := NewComment("prepare bell state")
	require.NoError(t, err)
	assert.Equal(t, "prepare bell state", c.Text)

	_, err = NewComment("bad */ content")
	require.Error(t, err)
	assert.True(t, IsIllegalCommentContent(err))
}

func TestCommentEqual(t *testing.T) {
	a, err := NewComment("one")
	require.NoError(t, err)
	b, err := NewComment("one")
	require.NoError(t, err)
	c, err := NewComment("two")
	require.NoError(t, err)

	eq, err := a.Equal(b)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = a.Equal(c)
	require.NoError(t, err)
	assert.False(t, eq)
}
