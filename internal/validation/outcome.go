package validation

// Violation is a single rule failure on one field.
type Violation struct {
	Field   string
	Message string
}

// Outcome groups violations by field, keeping fields in first-seen order and
// messages in the order they were produced.
type Outcome struct {
	fields   []string
	messages map[string][]string
}

// Add appends violations to the outcome.
func (o *Outcome) Add(violations ...Violation) {
	for _, v := range violations {
		if o.messages == nil {
			o.messages = make(map[string][]string)
		}
		if _, seen := o.messages[v.Field]; !seen {
			o.fields = append(o.fields, v.Field)
		}
		o.messages[v.Field] = append(o.messages[v.Field], v.Message)
	}
}

// Valid reports whether no violation was recorded.
func (o Outcome) Valid() bool {
	return len(o.fields) == 0
}

// Fields returns the violated fields in first-seen order.
func (o Outcome) Fields() []string {
	out := make([]string, len(o.fields))
	copy(out, o.fields)
	return out
}

// Messages returns the messages recorded for field.
func (o Outcome) Messages(field string) []string {
	msgs := o.messages[field]
	out := make([]string, len(msgs))
	copy(out, msgs)
	return out
}

// Len is the total number of violations.
func (o Outcome) Len() int {
	n := 0
	for _, msgs := range o.messages {
		n += len(msgs)
	}
	return n
}
