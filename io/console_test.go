package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_Prn(t *testing.T) {
	assert := assert.New(t)

	buffer := &bytes.Buffer{}
	con := &Console{Output: buffer}

	assert.NoError(con.Prn(17))
	assert.NoError(con.Prn(0))
	assert.Equal("17\n0\n", buffer.String())
}

func TestConsole_Pra(t *testing.T) {
	assert := assert.New(t)

	buffer := &bytes.Buffer{}
	con := &Console{Output: buffer}

	assert.NoError(con.Pra('H'))
	assert.NoError(con.Pra('i'))
	assert.NoError(con.Pra('\n'))
	assert.Equal("Hi\n", buffer.String())
}
