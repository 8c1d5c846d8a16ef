package iojson

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]any{"valid": true})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"valid\": true\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_marshalFailure(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]any{"ch": make(chan int)})
	require.Error(t, err)
	assert.Empty(t, out.String())

	var doc struct {
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &doc))
	assert.Equal(t, "marshal output", doc.Message)
	assert.NotEmpty(t, doc.Data["json_error"])
}

func TestWriteError(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, WriteError(&out, "unknown format \"xml\"", nil))

	var doc Error
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, Error{Message: "unknown format \"xml\""}, doc)
	assert.NotContains(t, out.String(), "data")
}
