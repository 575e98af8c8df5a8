package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/richmail/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("no failures returns nil", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("title", "Welcome"),
			validator.MinLenString("title", "Welcome", 3),
			validator.MaxLenString("title", "Welcome", 255),
		)
		require.NoError(t, err)
	})

	t.Run("collects every failure in order", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("title", "  "),
			validator.MinLenString("subject", "hi", 3),
			validator.MinLenSlice("recipients", []string{}, 1),
		)
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
		assert.True(t, validator.IsValidationError(err))

		ve := validator.ExtractValidationErrors(err)
		require.Len(t, ve, 3)
		assert.Equal(t, []string{"title", "subject", "recipients"}, ve.Fields())
		assert.Equal(t, []string{"must be at least 3 characters long"}, ve.Get("subject"))
		assert.Equal(t, "validation.min_items", ve.GetErrors("recipients")[0].TranslationKey)
		assert.Contains(t, err.Error(), "title: field is required")
	})
}

func TestMaxLenString_CountsCharacters(t *testing.T) {
	t.Parallel()

	require.NoError(t, validator.Apply(validator.MaxLenString("title", "héllo", 5)))
	require.Error(t, validator.Apply(validator.MaxLenString("title", "héllo!", 5)))
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"", false},
		{"   ", false},
		{"plainaddress", false},
		{"user@localhost", false},
		{"user@.example.com", false},
		{"user@example..com", false},
		{"John <john@example.com>", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(validator.ValidEmail("email", tt.value))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidationErrors_Add(t *testing.T) {
	t.Parallel()

	var ve validator.ValidationErrors
	assert.True(t, ve.IsEmpty())
	assert.Equal(t, "validation failed", ve.Error())

	ve.Add(validator.ValidationError{Field: "content", Message: "Content cannot be empty."})
	assert.True(t, ve.Has("content"))
	assert.False(t, ve.Has("title"))
}
