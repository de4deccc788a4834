package validator

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate *validator.Validate

var indexPattern = regexp.MustCompile(`\[\d+\]`)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag names in error paths
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// The built-in uuid tag rejects upper-case hex.
	if err := validate.RegisterValidation("uuid_any", validateUUIDAny); err != nil {
		panic(err)
	}
}

// accepts the canonical 8-4-4-4-12 form in either case
func validateUUIDAny(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// Issue is one violated constraint. Field is the JSON path of the offending
// value, e.g. "reservationType[1]".
type Issue struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, is.Field+": "+is.Code)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Messages maps "field.tag" (indices stripped) to a user-facing message.
type Messages map[string]string

// Struct validates s and returns a *ValidationError listing every violation, or nil.
func Struct(s any, msgs Messages) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		issues = append(issues, Issue{
			Field:   field,
			Code:    fe.Tag(),
			Message: msgs.lookup(field, fe.Tag(), fe.Param()),
		})
	}
	return &ValidationError{Issues: issues}
}

// Var validates a single value against tag, reporting failures under field.
func Var(field string, value any, tag string, msgs Messages) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, Issue{
			Field:   field,
			Code:    fe.Tag(),
			Message: msgs.lookup(field, fe.Tag(), fe.Param()),
		})
	}
	return &ValidationError{Issues: issues}
}

// FromDecodeError turns a JSON body decoding failure into a ValidationError.
func FromDecodeError(err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &ValidationError{Issues: []Issue{{
			Field:   typeErr.Field,
			Code:    "invalid_type",
			Message: "Verwacht " + typeErr.Type.String(),
		}}}
	}
	return &ValidationError{Issues: []Issue{{
		Field:   "",
		Code:    "invalid_json",
		Message: "Ongeldige invoer",
	}}}
}

func Merge(errs ...error) error {
	var merged ValidationError
	for _, err := range errs {
		if err == nil {
			continue
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		merged.Issues = append(merged.Issues, ve.Issues...)
	}
	if len(merged.Issues) == 0 {
		return nil
	}
	return &merged
}

// strips the root struct name: "CreateBookingRequest.reservationType[0]" -> "reservationType[0]"
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func (m Messages) lookup(field, tag, param string) string {
	key := indexPattern.ReplaceAllString(field, "") + "." + tag
	if msg, ok := m[key]; ok {
		return msg
	}

	switch tag {
	case "required":
		return "Dit veld is verplicht"
	case "email":
		return "Ongeldig e-mailadres"
	case "min":
		return "Waarde is te kort (minimaal " + param + ")"
	case "max":
		return "Waarde is te lang (maximaal " + param + ")"
	case "uuid", "uuid_any":
		return "Ongeldige UUID"
	case "datetime":
		return "Ongeldig formaat (verwacht " + param + ")"
	default:
		return "Ongeldige waarde"
	}
}
