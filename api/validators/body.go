package validators

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/campuskart/campuskart-backend/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// DecodeJSONBody parses the request body into dest. Malformed JSON is a
// validation error with the generic invalid-body message.
func DecodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid request body")
	}
	return nil
}

// DecodeValidated parses the body and runs the struct's validate tags. Every
// validation failure collapses to the single caller-supplied message, which
// is what the endpoint contract promises for missing fields.
func DecodeValidated(r *http.Request, dest any, missingFieldsMessage string) error {
	if err := DecodeJSONBody(r, dest); err != nil {
		return err
	}
	if err := validate.Struct(dest); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return pkgerrors.New(pkgerrors.CodeValidation, missingFieldsMessage)
		}
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, missingFieldsMessage)
	}
	return nil
}
