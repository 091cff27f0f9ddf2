package validation

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// Tags registered by NewValidator.
const (
	TagNationalID = "cpf"
	TagPhone      = "phone"
	TagEmail      = "emailshape"
	TagPostalCode = "cep"
	TagDate       = "isodate"
	TagMinName    = "minname"
	TagMinAge     = "minage"
)

// NewValidator returns a validator with the registration checks installed as
// tags. now supplies "today" for the minage tag.
func NewValidator(now func() time.Time) *validator.Validate {
	if now == nil {
		now = time.Now
	}
	v := validator.New()

	// Registration only fails for empty tags or nil funcs, so errors are ignored.
	_ = v.RegisterValidation(TagNationalID, stringCheck(IsNationalID))
	_ = v.RegisterValidation(TagPhone, stringCheck(IsPhone))
	_ = v.RegisterValidation(TagEmail, stringCheck(IsEmailShape))
	_ = v.RegisterValidation(TagPostalCode, stringCheck(IsPostalCodeShape))
	_ = v.RegisterValidation(TagDate, stringCheck(func(s string) bool {
		_, err := ParseDate(s)
		return err == nil
	}))
	_ = v.RegisterValidation(TagMinName, validateMinName)
	_ = v.RegisterValidation(TagMinAge, func(fl validator.FieldLevel) bool {
		minAge, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		age, err := ComputeAge(fl.Field().String(), now())
		if err != nil {
			return false
		}
		return age >= minAge
	})

	return v
}

func stringCheck(check func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return check(fl.Field().String())
	}
}

// validateMinName counts characters of the trimmed, NFC-normalized value so
// decomposed accents count once.
func validateMinName(fl validator.FieldLevel) bool {
	minLen, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return NameLength(fl.Field().String()) >= minLen
}

// NameLength returns the number of characters in the trimmed, NFC-normalized name.
func NameLength(name string) int {
	return utf8.RuneCountInString(norm.NFC.String(strings.TrimSpace(name)))
}
