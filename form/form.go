// Package form describes the intake questionnaire as data: sections, fields
// and option lists, each label carrying its Arabic and English text.
package form

import (
	"errors"
	"fmt"

	"github.com/mbolis/intake-form/lang"
)

var ErrInvalidDefinition = errors.New("form: invalid definition")

type Kind string

const (
	KindText     Kind = "text"
	KindNumber   Kind = "number"
	KindDate     Kind = "date"
	KindTel      Kind = "tel"
	KindEmail    Kind = "email"
	KindTextarea Kind = "textarea"
	KindCheckbox Kind = "checkbox-group"
	KindYesNo    Kind = "radio-pair"
)

// Text is one label in both languages.
type Text struct {
	AR string
	EN string
}

func (t Text) In(l lang.Language) string {
	if l == lang.English {
		return t.EN
	}
	return t.AR
}

func (t Text) empty() bool {
	return t.AR == "" && t.EN == ""
}

func (t Text) complete() bool {
	return t.AR != "" && t.EN != ""
}

type Option struct {
	Key   string
	Label Text
}

type Field struct {
	Name        string
	Kind        Kind
	Label       Text
	Hint        Text
	Placeholder Text
	Required    bool
	Min         *int
	Max         *int
	Options     []Option
}

type Section struct {
	Key         string
	Title       Text
	Description Text
	Fields      []Field
}

type Definition struct {
	Title    Text
	Subtitle Text
	Sections []Section
}

// yesNo is shared by every radio-pair field. The submitted values are the
// keys, not the labels.
var yesNo = []Option{
	{Key: "yes", Label: Text{AR: "نعم", EN: "Yes"}},
	{Key: "no", Label: Text{AR: "لا", EN: "No"}},
}

// Field returns the descriptor named name.
func (d Definition) Field(name string) (Field, bool) {
	for _, s := range d.Sections {
		for _, f := range s.Fields {
			if f.Name == name {
				return f, true
			}
		}
	}
	return Field{}, false
}

// Names lists every field name in form order.
func (d Definition) Names() []string {
	var names []string
	for _, s := range d.Sections {
		for _, f := range s.Fields {
			names = append(names, f.Name)
		}
	}
	return names
}

// Validate checks the definition is renderable in both languages and that
// submitted values cannot collide.
func (d Definition) Validate() error {
	if !d.Title.complete() {
		return fmt.Errorf("%w: form title needs both languages", ErrInvalidDefinition)
	}

	names := map[string]string{}
	sectionKeys := map[string]bool{}
	for _, s := range d.Sections {
		if s.Key == "" || sectionKeys[s.Key] {
			return fmt.Errorf("%w: section key %q empty or repeated", ErrInvalidDefinition, s.Key)
		}
		sectionKeys[s.Key] = true

		if !s.Title.complete() {
			return fmt.Errorf("%w: section %s: title needs both languages", ErrInvalidDefinition, s.Key)
		}
		if !s.Description.empty() && !s.Description.complete() {
			return fmt.Errorf("%w: section %s: description needs both languages", ErrInvalidDefinition, s.Key)
		}
		if len(s.Fields) == 0 {
			return fmt.Errorf("%w: section %s has no fields", ErrInvalidDefinition, s.Key)
		}

		for _, f := range s.Fields {
			if prev, dup := names[f.Name]; dup {
				return fmt.Errorf("%w: field %q in %s already defined in %s", ErrInvalidDefinition, f.Name, s.Key, prev)
			}
			names[f.Name] = s.Key

			if err := f.validate(); err != nil {
				return fmt.Errorf("%w: section %s: field %s: %s", ErrInvalidDefinition, s.Key, f.Name, err)
			}
		}
	}
	return nil
}

func (f Field) validate() error {
	if f.Name == "" {
		return errors.New("empty name")
	}
	if !f.Label.complete() {
		return errors.New("label needs both languages")
	}
	if !f.Hint.empty() && !f.Hint.complete() {
		return errors.New("hint needs both languages")
	}
	if !f.Placeholder.empty() && !f.Placeholder.complete() {
		return errors.New("placeholder needs both languages")
	}

	switch f.Kind {
	case KindText, KindDate, KindTel, KindEmail, KindTextarea, KindYesNo:
	case KindNumber:
		if f.Min != nil && f.Max != nil && *f.Min > *f.Max {
			return fmt.Errorf("min %d > max %d", *f.Min, *f.Max)
		}
	case KindCheckbox:
		if len(f.Options) == 0 {
			return errors.New("checkbox group without options")
		}
		keys := map[string]bool{}
		for _, o := range f.Options {
			if o.Key == "" || keys[o.Key] {
				return fmt.Errorf("option key %q empty or repeated", o.Key)
			}
			keys[o.Key] = true
			if !o.Label.complete() {
				return fmt.Errorf("option %s needs both languages", o.Key)
			}
		}
	default:
		return fmt.Errorf("unknown kind %q", f.Kind)
	}

	if f.Kind != KindNumber && (f.Min != nil || f.Max != nil) {
		return errors.New("min/max on a non-number field")
	}
	if f.Kind != KindCheckbox && len(f.Options) > 0 {
		return errors.New("options on a field that is not a checkbox group")
	}
	return nil
}

func between(min, max int) (*int, *int) {
	return &min, &max
}
