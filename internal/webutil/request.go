// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"go_5_tally_keep/internal/model"

	"github.com/go-playground/validator/v10"
)

// DecodeJSONBody はリクエストボディをデコードし、バリデーションまで行います
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		log.Printf("Error decoding JSON body: %v", err)
		return model.ErrInvalidInput
	}

	if err := Validator.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return NewValidationErrorResponse(validationErrs)
		}
		return model.ErrInvalidInput
	}
	return nil
}
