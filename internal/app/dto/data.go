package dto

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

const tagAirportCode = "airport_code"

var (
	Validate = validator.New()
	trans    ut.Translator

	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type Response struct {
	Message string `json:"message"`
}

func InitValidator() error {
	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	err := enTranslations.RegisterDefaultTranslations(Validate, trans)
	if err != nil {
		return err
	}

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := registerAirportCode(); err != nil {
		return err
	}

	return nil
}

// registerAirportCode adds the airport_code tag, an IATA code such as CGK or SIN.
func registerAirportCode() error {
	err := Validate.RegisterValidation(tagAirportCode, func(fl validator.FieldLevel) bool {
		return airportCodePattern.MatchString(fl.Field().String())
	})
	if err != nil {
		return err
	}

	return Validate.RegisterTranslation(tagAirportCode, trans,
		func(ut ut.Translator) error {
			return ut.Add(tagAirportCode, "{0} must be a 3-letter IATA airport code", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tagAirportCode, fe.Field())
			return t
		},
	)
}

func ValidateSingleError(req interface{}) error {
	if err := Validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return errors.New(ve[0].Translate(trans))
		}
		return err
	}
	return nil
}
