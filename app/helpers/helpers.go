package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/Rakhulsr/go-digistore/app/models"
	"github.com/go-playground/validator/v10"
)

type contextKey string

const (
	ContextKeySession contextKey = "session"
)

// GetSession pulls the resolved session identity out of the request context.
// The session middleware always installs one, so a nil return means the
// middleware is missing from the chain.
func GetSession(r *http.Request) *models.Session {
	session, ok := r.Context().Value(ContextKeySession).(*models.Session)
	if !ok {
		return nil
	}
	return session
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	formatted := make(map[string]string)
	for _, fieldErr := range errs {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			formatted[field] = fmt.Sprintf("%s is required.", fieldErr.Field())
		case "oneof":
			formatted[field] = fmt.Sprintf("%s must be one of: %s.", fieldErr.Field(), fieldErr.Param())
		case "min":
			formatted[field] = fmt.Sprintf("%s must be at least %s.", fieldErr.Field(), fieldErr.Param())
		case "max":
			formatted[field] = fmt.Sprintf("%s must be at most %s.", fieldErr.Field(), fieldErr.Param())
		default:
			formatted[field] = fmt.Sprintf("%s is invalid.", fieldErr.Field())
		}
	}
	return formatted
}

func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// AssetFileName mirrors the download naming scheme: lower-cased title with
// whitespace collapsed to dashes, extension by category.
func AssetFileName(p models.Product) string {
	base := strings.ToLower(whitespaceRe.ReplaceAllString(p.Title, "-"))
	if p.Category == models.CategoryEbook {
		return base + ".pdf"
	}
	return base + ".zip"
}

// FormatLabel is the human-readable delivery format shown in the library.
func FormatLabel(category models.Category) string {
	switch category {
	case models.CategoryEbook:
		return "PDF Document"
	case models.CategoryCourse:
		return "MP4 Video Pack"
	case models.CategoryTemplate:
		return "Figma Source"
	case models.CategoryTool:
		return "Python/Zip Source"
	default:
		return "Digital Asset"
	}
}
