// Package validation wraps go-playground/validator so request DTOs report
// failures as apperr validation errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/fkhayef/haulledger/pkg/apperr"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report json names so messages match what the caller sent
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Struct validates s and converts failures into an *apperr.Error whose
// Fields map each failing field to the rule it broke.
func Struct(s any) error {
	return convert(instance().Struct(s), "")
}

// Var validates a single value against tag, reporting failures under name
func Var(value any, tag, name string) error {
	return convert(instance().Var(value, tag), name)
}

func convert(err error, name string) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperr.Validation(err.Error())
	}

	fields := make(map[string]string, len(validationErrors))
	for _, ve := range validationErrors {
		field := ve.Field()
		if field == "" {
			field = name
		}
		fields[field] = ve.Tag()
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s failed %s", name, fields[name])
	}

	e := apperr.Validation("invalid request: " + strings.Join(parts, ", "))
	e.Fields = fields
	return e
}
