package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/miekg/dns"
)

// TagDNSName is the validator tag for DNS owner and target names.
const TagDNSName = "dnsname"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	if err := v.RegisterValidation(TagDNSName, isDNSName); err != nil {
		panic(err)
	}

	return v
}

// IsDNSName reports whether name is a syntactically valid domain name.
func IsDNSName(name string) bool {
	if name == "" || strings.ContainsAny(name, " \t\r\n") {
		return false
	}

	_, ok := dns.IsDomainName(name)

	return ok
}

func isDNSName(fl validator.FieldLevel) bool {
	return IsDNSName(fl.Field().String())
}

func checkRules(f Field, v any) error {
	if f.Rules == "" {
		return nil
	}

	err := validate.Var(v, f.Rules)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		return &FieldError{Field: f.Name, Tag: ves[0].Tag(), Value: v}
	}

	return &FieldError{Field: f.Name, Tag: TagType, Value: v}
}
