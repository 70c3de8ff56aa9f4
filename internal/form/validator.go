package form

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/folio/internal/domain/content"
	apperrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Validator returns the shared validator with folio's custom tags:
//   - asset_url: empty, an in-page anchor ("#..."), an http(s) or mailto URL,
//     or a site-relative path.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(jsonFieldName)

		_ = v.RegisterValidation("asset_url", func(fl validator.FieldLevel) bool {
			return isAssetURL(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

func isAssetURL(raw string) bool {
	if raw == "" {
		return true
	}
	if strings.TrimSpace(raw) != raw || strings.ContainsAny(raw, " \t\n\x00") {
		return false
	}
	if strings.HasPrefix(raw, "#") {
		return true
	}
	if strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "./") || strings.HasPrefix(raw, "../") {
		return !strings.HasPrefix(raw, "//")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return parsed.Host != ""
	case "mailto":
		return parsed.Opaque != ""
	default:
		return false
	}
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// ValidateDocument checks every region of doc against its field rules.
func ValidateDocument(doc content.Document) error {
	return convertValidationError(Validator().Struct(doc))
}

// convertValidationError maps the first validator failure onto a
// ValidationError whose field is the JSON path, e.g. "projects[1].imageUrl".
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		fe := ves[0]
		field := fieldPath(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("form", err.Error(), err)
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	if ns == "" {
		return "value"
	}
	return ns
}
