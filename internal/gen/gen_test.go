package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	assert.Equal(t, "    ", Options{}.Unit())
	assert.Equal(t, 4, DefaultOptions().Width())
	assert.Equal(t, "  ", WithIndentWidth(2).Unit())
	assert.Equal(t, 1, Options{IndentUnit: "\t"}.Width())

	b := WithIndentWidth(2).Buffer()
	b.Line("a")
	b.Block(func() { b.Line("b") })
	assert.Equal(t, "a\n  b", b.String())
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "'Kit'", Quote("Kit"))
	assert.Equal(t, `'it\'s'`, Quote("it's"))
	assert.Equal(t, `'a\\'`, Quote(`a\`))
	assert.Equal(t, `'C:\\it\'s'`, Quote(`C:\it's`))
}

func TestBlank(t *testing.T) {
	assert.True(t, Blank(" \t\n"))
	assert.False(t, Blank(" x "))
}
