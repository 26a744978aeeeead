package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks raw form values against a Schema.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new form validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks raw against schema. On success it returns the value of
// every schema field exactly as submitted; otherwise the error is a
// FieldErrors. Text fields are trimmed for the required check only; length
// and choice rules see the submitted value.
func (v *Validator) Validate(schema Schema, raw map[string]string) (Values, error) {
	values := make(Values, len(schema))
	errs := FieldErrors{}

	for _, f := range schema {
		value := raw[f.Name]
		values[f.Name] = value

		msgs, err := v.check(f, value)
		if err != nil {
			return nil, fmt.Errorf("validate %s: %w", f.Name, err)
		}
		if len(msgs) > 0 {
			errs[f.Name] = msgs
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return values, nil
}

// check returns the messages for one field. Content rules are skipped when
// the field is missing.
func (v *Validator) check(f Field, value string) ([]string, error) {
	present := value
	if f.Kind == KindText {
		present = strings.TrimSpace(value)
	}
	if tag := f.presenceTag(); tag != "" {
		msgs, err := v.run(present, tag)
		if err != nil || len(msgs) > 0 {
			return msgs, err
		}
	}
	if tag := f.contentTag(); tag != "" {
		return v.run(value, tag)
	}
	return nil, nil
}

func (v *Validator) run(value, tag string) ([]string, error) {
	err := v.validate.Var(value, tag)
	if err == nil {
		return nil, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return msgs, nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "oneof":
		return "Not a valid choice."
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	default:
		return "Invalid value."
	}
}
