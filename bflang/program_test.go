package bflang

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramString(t *testing.T) {
	program, err := Parse("add [ loop - ] done.")
	require.NoError(t, err)
	assert.Equal(t, "[-].", program.String())
}

func TestDisassemble(t *testing.T) {
	program, err := Parse("+[-]")
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := program.Disassemble(&buf)
	require.NoError(t, err)
	assert.Equal(t, buf.Len(), n)
	assert.Equal(t, "0  INC\n1  JZ -> 4\n2  DEC\n3  JNZ -> 1\n", buf.String())
}

func TestDisassemblePadsIndexes(t *testing.T) {
	program, err := Parse("++++++++++.")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = program.Disassemble(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "00  INC\n")
	assert.Contains(t, buf.String(), "10  OUT\n")
}

func TestOpTokens(t *testing.T) {
	for _, b := range []byte("><+-.,[]") {
		op, ok := OpOf(b)
		require.True(t, ok)
		assert.Equal(t, string(b), op.String())
		assert.Equal(t, b, op.Token())
	}
	op, ok := OpOf(' ')
	assert.False(t, ok)
	assert.Equal(t, OpInvalid, op)
	assert.Equal(t, "?", op.String())
	assert.Equal(t, "INVALID", Op(200).Name())
}
