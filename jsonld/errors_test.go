package jsonld

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessorError_Unwrap(t *testing.T) {
	t.Run("Details is error", func(t *testing.T) {
		err := errors.New("failed")
		assert.Equal(t, err, NewProcessorError(UnknownError, err).Unwrap())
	})
	t.Run("Details is not an error", func(t *testing.T) {
		assert.Nil(t, NewProcessorError(UnknownError, "failed").Unwrap())
	})
	t.Run("Details is nil", func(t *testing.T) {
		assert.Nil(t, NewProcessorError(UnknownError, nil).Unwrap())
	})
}

func TestProcessorError_Detail(t *testing.T) {
	t.Run("string detail", func(t *testing.T) {
		assert.Equal(t, JString("ex:term"), NewProcessorError(InvalidTermDefinition, "ex:term").Detail())
	})
	t.Run("nil detail", func(t *testing.T) {
		assert.Equal(t, JNull{}, NewProcessorError(UnknownError, nil).Detail())
	})
	t.Run("structured detail", func(t *testing.T) {
		detail := NewProcessorError(InvalidContainerMapping, map[string]interface{}{"@container": "@set"}).Detail()
		obj, ok := detail.(JObject)
		require.True(t, ok)
		assert.Equal(t, JString("@set"), obj["@container"])
	})
}
