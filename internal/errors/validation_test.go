package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pokeview/pokedex-api/internal/errors"
)

func TestValidationBuilder_NoErrors(t *testing.T) {
	vb := errors.NewValidationBuilder()
	assert.NoError(t, vb.Build())
}

func TestValidationBuilder_RequiredField(t *testing.T) {
	err := errors.NewValidationBuilder().
		RequiredField("Client").
		Build()

	assert.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Client: is required")
}

func TestValidationBuilder_MultipleFields(t *testing.T) {
	err := errors.NewValidationBuilder().
		RequiredField("Client").
		InvalidField("Language", "unknown code").
		Build()

	assert.Error(t, err)

	var structured *errors.Error
	assert.True(t, errors.As(err, &structured))
	fields, ok := structured.Meta["validation_errors"].(map[string][]string)
	assert.True(t, ok)
	assert.Len(t, fields, 2)
}

func TestValidateEnum(t *testing.T) {
	allowed := []string{"en", "fr", "de"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("language", "fr", allowed, vb)
	assert.NoError(t, vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("language", "xx", allowed, vb)
	assert.Error(t, vb.Build())
}

func TestValidateRange(t *testing.T) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("limit", 151, 1, 1025, vb)
	assert.NoError(t, vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRange("limit", 0, 1, 1025, vb)
	assert.Error(t, vb.Build())
}
