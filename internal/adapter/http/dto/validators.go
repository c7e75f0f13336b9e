package dto

import (
	"html"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"cryptopay-gateway/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Reference ids and wallet addresses are echoed into logs, cache keys and
// webhook bodies, so they are held to a conservative alphabet.
var safeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

var customRules = map[string]validator.Func{
	"safe_id":  func(fl validator.FieldLevel) bool { return safeIDPattern.MatchString(fl.Field().String()) },
	"safe_url": isWebhookURL,
	"rail":     func(fl validator.FieldLevel) bool { return domain.Currency(fl.Field().String()).IsValid() },
}

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	for tag, fn := range customRules {
		_ = v.RegisterValidation(tag, fn)
	}
}

// isWebhookURL accepts an empty value or an absolute http(s) URL with a host.
func isWebhookURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// SanitizeStruct trims and HTML-escapes the exported string and *string
// fields of a struct pointer. `sanitize:"-"` opts a field out; passwords
// use it.
func SanitizeStruct(v any) {
	rewriteStrings(v, func(s string) string { return html.EscapeString(strings.TrimSpace(s)) })
}

// TrimStruct only trims, so validation sees what the user meant to send.
func TrimStruct(v any) {
	rewriteStrings(v, strings.TrimSpace)
}

func rewriteStrings(v any, fn func(string) string) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return
	}
	st := rv.Elem()
	for i := range st.NumField() {
		if st.Type().Field(i).Tag.Get("sanitize") == "-" {
			continue
		}
		if s, ok := settableString(st.Field(i)); ok {
			s.SetString(fn(s.String()))
		}
	}
}

func settableString(f reflect.Value) (reflect.Value, bool) {
	if !f.CanSet() {
		return f, false
	}
	if f.Kind() == reflect.Pointer {
		if f.IsNil() {
			return f, false
		}
		f = f.Elem()
	}
	return f, f.Kind() == reflect.String
}
