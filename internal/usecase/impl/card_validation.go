package impl

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"unicode/utf8"

	"bizcard/internal/domain/slug"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const maxKeywordLength = 50

// newCardValidator builds a validator with the card-specific tags
// cardslug, keyword and heroimage registered.
func newCardValidator(maxHeroImageBytes int) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	_ = v.RegisterValidation("cardslug", func(fl validator.FieldLevel) bool {
		return slug.Valid(fl.Field().String())
	})
	_ = v.RegisterValidation("keyword", func(fl validator.FieldLevel) bool {
		keyword := strings.TrimSpace(fl.Field().String())

		return keyword != "" && utf8.RuneCountInString(keyword) <= maxKeywordLength
	})
	_ = v.RegisterValidation("heroimage", func(fl validator.FieldLevel) bool {
		return validHeroImage(fl.Field().String(), maxHeroImageBytes)
	})

	return v
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

// validHeroImage accepts an absolute http(s) URL or a base64 data URI whose
// content is sniffed as an image and fits within maxBytes.
func validHeroImage(value string, maxBytes int) bool {
	if strings.HasPrefix(value, "data:") {
		return validImageDataURI(value, maxBytes)
	}

	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validImageDataURI(value string, maxBytes int) bool {
	header, payload, ok := strings.Cut(strings.TrimPrefix(value, "data:"), ",")
	if !ok {
		return false
	}

	mediaType, encoding, _ := strings.Cut(header, ";")
	if !strings.HasPrefix(mediaType, "image/") || encoding != "base64" {
		return false
	}

	if maxBytes > 0 && base64.StdEncoding.DecodedLen(len(payload)) > maxBytes+2 {
		return false
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return false
	}
	if maxBytes > 0 && len(data) > maxBytes {
		return false
	}

	return strings.HasPrefix(mimetype.Detect(data).String(), "image/")
}

// validationDetails renders validator errors as a single readable line.
func validationDetails(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed on '%s=%s'", field, fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s failed on '%s'", field, fe.Tag()))
		}
	}

	return strings.Join(parts, "; ")
}
