package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"tourism-service/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

// Validator checks input DTOs and reports violations as a *ValidationError
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that names fields by their json tags
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enums := map[string]func(string) bool{
		"tourcategory":  entity.IsValidCategory,
		"tourstatus":    entity.IsValidTourStatus,
		"accommodation": entity.IsValidAccommodation,
		"adminrole":     entity.IsValidRole,
	}
	for tag, fn := range enums {
		fn := fn
		v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		})
	}

	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &Validator{validate: v}
}

var enumSets = map[string][]string{
	"tourcategory":  entity.TourCategories,
	"tourstatus":    entity.TourStatuses,
	"accommodation": entity.AccommodationTypes,
	"adminrole":     {entity.RoleAdmin, entity.RoleSuperAdmin},
}

// Struct validates s. It returns nil or a *ValidationError.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: message(fe),
		})
	}
	return out
}

// fieldPath drops the struct name from a validator namespace
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "notblank":
		return field + " cannot be empty"
	case "email":
		return "Please provide a valid email"
	case "min", "gte":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		default:
			return fmt.Sprintf("%s must be at least %s", field, fe.Param())
		}
	case "max", "lte":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("%s cannot contain more than %s item(s)", field, fe.Param())
		default:
			return fmt.Sprintf("%s must be at most %s", field, fe.Param())
		}
	}

	if set, ok := enumSets[fe.Tag()]; ok {
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(set, ", "))
	}

	return field + " is invalid"
}

// FlexInt accepts a JSON number or a numeric string
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler
func (n *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		return nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			return &json.UnmarshalTypeError{Value: string(b), Type: reflect.TypeOf(0)}
		}
		v = int(f)
	}

	*n = FlexInt(v)
	return nil
}

// FlexFloat accepts a JSON number or a numeric string
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler
func (n *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return &json.UnmarshalTypeError{Value: string(b), Type: reflect.TypeOf(0.0)}
	}

	*n = FlexFloat(v)
	return nil
}

func trimAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
