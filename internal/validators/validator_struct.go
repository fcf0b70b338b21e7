// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/donate-hub/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// StructValidator implements [Validator] for request models annotated with
// `validate` tags. Field names in reports follow the `json` tags.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator constructs a [StructValidator]. Decimal amounts are
// compared as numbers, so tags such as `gt=0` apply to them.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return &StructValidator{validate: v}
}

// Validate checks obj against its tags. When fields are given, only those
// (json-named) fields are validated.
//
// Returns a *ValidationError on rule violations and ErrUnsupportedType when
// obj is not a struct or a pointer to one.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	result := &ValidationError{}
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		result.Fields = append(result.Fields, models.FieldError{Field: fe.Field(), Rule: rule})
	}
	return result
}
