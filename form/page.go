package form

import "github.com/mbolis/intake-form/lang"

// Page is the definition resolved to one language, ready for a template.
type Page struct {
	Lang     lang.Language
	Dir      string
	Title    string
	Subtitle string
	Sections []PageSection
}

type PageSection struct {
	Number      int
	Key         string
	Title       string
	Description string
	Fields      []PageField
}

type PageField struct {
	Name        string
	Kind        Kind
	InputType   string
	Label       string
	Hint        string
	Placeholder string
	Required    bool
	Min         *int
	Max         *int
	Choices     []PageChoice
}

type PageChoice struct {
	ID    string
	Value string
	Label string
}

// Localize resolves every text of d to l.
func (d Definition) Localize(l lang.Language) Page {
	p := Page{
		Lang:     l,
		Dir:      l.Dir(),
		Title:    d.Title.In(l),
		Subtitle: d.Subtitle.In(l),
		Sections: make([]PageSection, 0, len(d.Sections)),
	}

	for i, s := range d.Sections {
		ps := PageSection{
			Number:      i + 1,
			Key:         s.Key,
			Title:       s.Title.In(l),
			Description: s.Description.In(l),
			Fields:      make([]PageField, 0, len(s.Fields)),
		}
		for _, f := range s.Fields {
			ps.Fields = append(ps.Fields, f.localize(l))
		}
		p.Sections = append(p.Sections, ps)
	}
	return p
}

func (f Field) localize(l lang.Language) PageField {
	pf := PageField{
		Name:        f.Name,
		Kind:        f.Kind,
		InputType:   string(f.Kind),
		Label:       f.Label.In(l),
		Hint:        f.Hint.In(l),
		Placeholder: f.Placeholder.In(l),
		Required:    f.Required,
		Min:         f.Min,
		Max:         f.Max,
	}

	switch f.Kind {
	case KindCheckbox:
		pf.InputType = "checkbox"
		for _, o := range f.Options {
			label := o.Label.In(l)
			// checkboxes submit their visible text
			pf.Choices = append(pf.Choices, PageChoice{ID: f.Name + "-" + o.Key, Value: label, Label: label})
		}
	case KindYesNo:
		pf.InputType = "radio"
		for _, o := range yesNo {
			pf.Choices = append(pf.Choices, PageChoice{ID: f.Name + "-" + o.Key, Value: o.Key, Label: o.Label.In(l)})
		}
	case KindTextarea:
		pf.InputType = ""
	}
	return pf
}
