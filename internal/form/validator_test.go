package form

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Greeting(t *testing.T) {
	tests := []struct {
		name       string
		raw        map[string]string
		wantErrors FieldErrors
	}{
		{
			name: "valid name",
			raw:  map[string]string{"name": "Ana"},
		},
		{
			name:       "empty name",
			raw:        map[string]string{"name": ""},
			wantErrors: FieldErrors{"name": {"This field is required."}},
		},
		{
			name:       "whitespace only",
			raw:        map[string]string{"name": "   \t"},
			wantErrors: FieldErrors{"name": {"This field is required."}},
		},
		{
			name:       "absent field",
			raw:        map[string]string{},
			wantErrors: FieldErrors{"name": {"This field is required."}},
		},
		{
			name:       "too long",
			raw:        map[string]string{"name": strings.Repeat("a", 65)},
			wantErrors: FieldErrors{"name": {"Field cannot be longer than 64 characters."}},
		},
		{
			name:       "padding counts towards the length",
			raw:        map[string]string{"name": "   " + strings.Repeat("a", 64) + "   "},
			wantErrors: FieldErrors{"name": {"Field cannot be longer than 64 characters."}},
		},
		{
			name: "padded name within the length",
			raw:  map[string]string{"name": " " + strings.Repeat("a", 62) + " "},
		},
		{
			name: "multibyte runes count once",
			raw:  map[string]string{"name": strings.Repeat("ç", 64)},
		},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := v.Validate(Greeting.Schema, tt.raw)
			if tt.wantErrors == nil {
				require.NoError(t, err)
				assert.Equal(t, Values{"name": tt.raw["name"]}, values)
				return
			}
			var ferrs FieldErrors
			require.True(t, errors.As(err, &ferrs))
			assert.Equal(t, tt.wantErrors, ferrs)
			assert.Nil(t, values)
		})
	}
}

func TestValidator_Enrollment(t *testing.T) {
	valid := map[string]string{
		"name":        "Ana",
		"sobrenome":   "Souza",
		"instituicao": "IFSP",
		"disciplina":  "DSWA5",
	}
	with := func(field, value string) map[string]string {
		raw := make(map[string]string, len(valid))
		for k, v := range valid {
			raw[k] = v
		}
		raw[field] = value
		return raw
	}

	v := NewValidator()

	t.Run("valid", func(t *testing.T) {
		values, err := v.Validate(Enrollment.Schema, valid)
		require.NoError(t, err)
		assert.Equal(t, Values(valid), values)
	})

	t.Run("subject outside the allowed set", func(t *testing.T) {
		_, err := v.Validate(Enrollment.Schema, with("disciplina", "DSWA4"))
		var ferrs FieldErrors
		require.True(t, errors.As(err, &ferrs))
		assert.Equal(t, FieldErrors{"disciplina": {"Not a valid choice."}}, ferrs)
	})

	t.Run("subject is case sensitive", func(t *testing.T) {
		_, err := v.Validate(Enrollment.Schema, with("disciplina", "dswa5"))
		assert.Error(t, err)
	})

	t.Run("every empty field is reported", func(t *testing.T) {
		_, err := v.Validate(Enrollment.Schema, map[string]string{})
		var ferrs FieldErrors
		require.True(t, errors.As(err, &ferrs))
		assert.Len(t, ferrs, 4)
		assert.Equal(t, []string{"This field is required."}, ferrs["disciplina"])
	})

	t.Run("values are returned as submitted", func(t *testing.T) {
		values, err := v.Validate(Enrollment.Schema, with("sobrenome", "  Souza "))
		require.NoError(t, err)
		assert.Equal(t, "  Souza ", values["sobrenome"])
	})

	t.Run("extra fields are ignored", func(t *testing.T) {
		values, err := v.Validate(Enrollment.Schema, with("submit", "Submit"))
		require.NoError(t, err)
		assert.NotContains(t, values, "submit")
	})
}

func TestValidator_ChoiceEscaping(t *testing.T) {
	schema := Schema{{
		Name:    "course",
		Kind:    KindChoice,
		Choices: []string{"Web Apps", "A,B", "X|Y"},
	}}
	v := NewValidator()

	for _, ok := range []string{"Web Apps", "A,B", "X|Y", ""} {
		_, err := v.Validate(schema, map[string]string{"course": ok})
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"Web", "A", "X"} {
		_, err := v.Validate(schema, map[string]string{"course": bad})
		assert.Error(t, err, bad)
	}
}

func TestLookupVariant(t *testing.T) {
	v, err := LookupVariant("greeting")
	require.NoError(t, err)
	assert.False(t, v.ShowElapsed)

	v, err = LookupVariant("enrollment")
	require.NoError(t, err)
	assert.True(t, v.ShowElapsed)
	f, ok := v.Schema.Field(FieldSubject)
	require.True(t, ok)
	assert.Equal(t, []string{"DSWA5"}, f.Choices)

	_, err = LookupVariant("merged")
	assert.Error(t, err)
}
