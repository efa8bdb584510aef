/*
Package validate provides validators for element values, backed by
go-playground/validator.

A validator is created from a validation tag, using the tag syntax of
go-playground/validator:

    v := validate.Tag("required,email")
    err := v.Validate("me@example.com")

Elements take validators through their "validator" property.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package validate

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'thedom.validate'
func tracer() tracing.Trace {
	return tracing.Select("thedom.validate")
}

var engine struct {
	once sync.Once
	v    *validator.Validate
}

func instance() *validator.Validate {
	engine.once.Do(func() {
		engine.v = validator.New()
	})
	return engine.v
}

// TagValidator validates values against a go-playground/validator tag.
type TagValidator struct {
	tag string
}

// Tag creates a validator for a validation tag, e.g. "required,max=20".
func Tag(tag string) *TagValidator {
	return &TagValidator{tag: strings.TrimSpace(tag)}
}

// Tag returns the validation tag.
func (tv *TagValidator) Tag() string {
	return tv.tag
}

func (tv *TagValidator) String() string {
	return "validate(" + tv.tag + ")"
}

// Validate checks a value. A nil value is validated as an empty string.
// Invalid tags are reported as errors, not panics.
func (tv *TagValidator) Validate(value any) (err error) {
	if tv.tag == "" {
		return nil
	}
	if value == nil {
		value = ""
	}
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("invalid validation tag %q: %v", tv.tag, r)
			err = fmt.Errorf("invalid validation tag %q: %v", tv.tag, r)
		}
	}()
	if err = instance().Var(value, tv.tag); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return fmt.Errorf("value fails %q check", verrs[0].Tag())
		}
	}
	return err
}
