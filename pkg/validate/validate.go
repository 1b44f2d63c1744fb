package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	msisdnPattern = regexp.MustCompile(`^(?:\+?254|0)([17]\d{8})$`)
	pinPattern    = regexp.MustCompile(`^\d{4}$`)

	once     sync.Once
	instance *validator.Validate
)

// NormalizePhone returns the provider's 0XXXXXXXXX form of a Kenyan mobile
// number. Spaces and dashes are ignored; anything else must match exactly.
func NormalizePhone(phone string) (string, bool) {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
	m := msisdnPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return "", false
	}
	return "0" + m[1], true
}

func IsPIN(pin string) bool {
	return pinPattern.MatchString(pin)
}

// Validator returns the shared struct validator with the msisdn and pin tags
// registered.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("msisdn", func(fl validator.FieldLevel) bool {
			_, ok := NormalizePhone(fl.Field().String())
			return ok
		})
		_ = v.RegisterValidation("pin", func(fl validator.FieldLevel) bool {
			return IsPIN(fl.Field().String())
		})
		instance = v
	})
	return instance
}

func Struct(s any) error {
	return Validator().Struct(s)
}

// Message turns validation errors into a client-facing message naming the
// offending JSON fields.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "msisdn":
			msgs = append(msgs, fe.Field()+" must be a valid mobile number")
		case "pin":
			msgs = append(msgs, fe.Field()+" must be 4 digits")
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}
