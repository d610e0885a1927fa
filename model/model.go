package model

import (
	"encoding/json"
	"net/url"
	"time"

	"github.com/mbolis/intake-form/form"
	"github.com/mbolis/intake-form/lang"
)

// SubmissionRecord maps a field name to the literal values submitted for it.
// Checkbox groups sharing one name keep every checked value in order.
type SubmissionRecord map[string][]string

// Collect builds the record of a posted form. Names the definition does not
// know are dropped, and so are empty values: an unfilled field is absent.
func Collect(def form.Definition, values url.Values) SubmissionRecord {
	record := SubmissionRecord{}
	for _, name := range def.Names() {
		for _, v := range values[name] {
			if v == "" {
				continue
			}
			record[name] = append(record[name], v)
		}
	}
	return record
}

// Get returns the first value of name.
func (r SubmissionRecord) Get(name string) string {
	if vs := r[name]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// MarshalJSON writes single values as strings and repeated ones as arrays.
func (r SubmissionRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r))
	for name, vs := range r {
		if len(vs) == 1 {
			out[name] = vs[0]
		} else {
			out[name] = vs
		}
	}
	return json.Marshal(out)
}

func (r *SubmissionRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rec := make(SubmissionRecord, len(raw))
	for name, msg := range raw {
		var one string
		if err := json.Unmarshal(msg, &one); err == nil {
			rec[name] = []string{one}
			continue
		}
		var many []string
		if err := json.Unmarshal(msg, &many); err != nil {
			return err
		}
		rec[name] = many
	}
	*r = rec
	return nil
}

type Submission struct {
	ID     string           `json:"id"`
	Time   time.Time        `json:"time"`
	IP     string           `json:"ip"`
	Lang   lang.Language    `json:"lang"`
	Fields SubmissionRecord `json:"fields"`
}
