// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/taibuivan/cookbook/internal/platform/apperr"
)

// Struct tags registered on top of the go-playground built-ins. They apply the
// same trimming as the chainable [Validator]:
//
//	notblank      the trimmed value is not empty
//	trimmin=N     trimmed rune count is at least N; "" is exempt
//	trimmax=N     trimmed rune count is at most N
//	httpsurl      https://host.tld shape; "" is exempt
const (
	tagNotBlank = "notblank"
	tagTrimMin  = "trimmin"
	tagTrimMax  = "trimmax"
	tagHTTPSURL = "httpsurl"
)

var (
	engineOnce sync.Once
	engine     *validator.Validate
	translator ut.Translator
)

// structEngine lazily builds the shared tag validator and its English translator.
func structEngine() (*validator.Validate, ut.Translator) {
	engineOnce.Do(func() {
		engine = validator.New(validator.WithRequiredStructEnabled())

		// Report JSON field names so details match the wire format.
		engine.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = engine.RegisterValidation(tagNotBlank, func(fl validator.FieldLevel) bool {
			return !blank(fl.Field().String())
		})
		_ = engine.RegisterValidation(tagTrimMin, func(fl validator.FieldLevel) bool {
			return !tooShort(fl.Field().String(), intParam(fl))
		})
		_ = engine.RegisterValidation(tagTrimMax, func(fl validator.FieldLevel) bool {
			return !tooLong(fl.Field().String(), intParam(fl))
		})
		_ = engine.RegisterValidation(tagHTTPSURL, func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || MatchURL(value)
		})

		eng := en.New()
		uni := ut.New(eng, eng)
		translator, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(engine, translator)

		registerMessage(tagNotBlank, "{0} is a required field")
		registerMessage(tagTrimMin, "{0} must be at least {1} characters in length")
		registerMessage(tagTrimMax, "{0} must be a maximum of {1} characters in length")
		registerMessage(tagHTTPSURL, "{0} must be a valid https URL")
	})
	return engine, translator
}

// intParam reads the numeric tag parameter and panics on a malformed tag.
func intParam(fl validator.FieldLevel) int {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic("validate: tag " + fl.GetTag() + " needs an integer parameter, got " + strconv.Quote(fl.Param()))
	}
	return n
}

// registerMessage adds the English message for tag. {0} is the field and {1}
// the tag parameter.
func registerMessage(tag, text string) {
	_ = engine.RegisterTranslation(tag, translator,
		func(trans ut.Translator) error {
			return trans.Add(tag, text, true)
		},
		func(trans ut.Translator, fe validator.FieldError) string {
			message, _ := trans.T(tag, fe.Field(), fe.Param())
			return message
		},
	)
}

// Struct validates target against its `validate` struct tags.
//
// Failures are returned as a VALIDATION_ERROR [apperr.AppError] whose details
// carry the JSON field path (e.g. "ingredients[1]"), a rule code and a
// translated English message.
func Struct(target any) error {
	v, trans := structEngine()

	err := v.Struct(target)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperr.Internal(err)
	}

	details := make([]apperr.FieldError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		details = append(details, apperr.FieldError{
			Field:   fieldPath(fieldError.Namespace()),
			Rule:    ruleForTag(fieldError.Tag()),
			Message: fieldError.Translate(trans),
		})
	}

	return apperr.ValidationError("Validation failed", details...)
}

// fieldPath drops the leading struct name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}
	return namespace
}

func ruleForTag(tag string) string {
	switch tag {
	case "required", tagNotBlank:
		return RuleRequired
	case "min", tagTrimMin:
		return RuleMinLength
	case "max", tagTrimMax:
		return RuleMaxLength
	case tagHTTPSURL:
		return RuleInvalidURL
	case "uuid", "uuid4", "uuid7":
		return RuleUUID
	default:
		return tag
	}
}
