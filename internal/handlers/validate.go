package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/kanban-board-api/internal/logger"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeRequest reads the JSON body into dst and validates it.
// It writes the 400 or 422 response itself and reports whether the handler may go on.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Log.Warnw("invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			writeInternalError(w, err)
			return false
		}
		writeValidationErrors(w, validationMessages(verrs))
		return false
	}
	return true
}

func validationMessages(verrs validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	attr := strings.ReplaceAll(fe.Field(), "_", " ")
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es obligatorio.", attr)
	case "email":
		return fmt.Sprintf("El campo %s debe ser una dirección de correo válida.", attr)
	case "max":
		if isString {
			return fmt.Sprintf("El campo %s no debe ser mayor que %s caracteres.", attr, fe.Param())
		}
		return fmt.Sprintf("El campo %s no debe ser mayor que %s.", attr, fe.Param())
	case "min":
		if isString && fe.Param() == "1" {
			return fmt.Sprintf("El campo %s es obligatorio.", attr)
		}
		if isString {
			return fmt.Sprintf("El campo %s debe contener al menos %s caracteres.", attr, fe.Param())
		}
		return fmt.Sprintf("El campo %s debe ser al menos %s.", attr, fe.Param())
	case "oneof":
		return fmt.Sprintf("El %s seleccionado no es válido.", attr)
	case "uuid":
		return fmt.Sprintf("El %s seleccionado no es válido.", attr)
	default:
		return fmt.Sprintf("El campo %s no es válido.", attr)
	}
}
