package wordninja

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jamesainslie/go-wordninja/lexicon"
)

// MaxInputLength is the maximum input length in characters (runes).
const MaxInputLength = 2000

// maxInputTag is a validator alias for the MaxInputLength rune cap.
const maxInputTag = "maxinput"

// splitRequest carries raw input through validation.
type splitRequest struct {
	Text string `validate:"required,maxinput"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterAlias(maxInputTag, fmt.Sprintf("max=%d", MaxInputLength))
	return v
}

// prepare validates raw input and returns its cleaned form.
func prepare(text string) (string, error) {
	if err := validate.Struct(splitRequest{Text: text}); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			switch fieldErrs[0].Tag() {
			case "required":
				return "", fmt.Errorf("%w: text is empty", ErrInvalidInput)
			case maxInputTag:
				return "", fmt.Errorf("%w: text is longer than %d characters", ErrInvalidInput, MaxInputLength)
			}
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	cleaned := lexicon.Clean(text)
	if cleaned == "" {
		return "", fmt.Errorf("%w: text has no letters, digits or apostrophes", ErrInvalidInput)
	}
	return cleaned, nil
}
