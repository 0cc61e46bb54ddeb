// Package normalize maps option values posted by the public forms onto the
// canonical codes that are stored in the database.
//
// The forms went through several front-end revisions in three languages, so a
// select box may post a code ("clinic_owner"), a current display label
// ("Консультация"), an old role label ("Владелец клиники") or a prompt that
// means nothing was chosen ("Select problem"). Callers only ever see codes.
package normalize

import (
	"fmt"
	"sort"
	"strings"
)

// Other is the catch-all code shared by every code set.
const Other = "other"

// Label binds a display or legacy option text to the code it stands for.
type Label struct {
	Text string
	Code string
}

// Normalizer resolves submitted option values for one closed set of codes.
// It is built once and never mutated, so it is safe for concurrent use.
type Normalizer struct {
	codes        map[string]struct{}
	placeholders map[string]struct{}
	labels       map[string]string
}

// New builds a Normalizer. Repeated label texts are allowed as long as they
// agree on the code; New panics when a text is bound to two different codes
// or when a label points at a code outside the set.
func New(codes, placeholders []string, labels []Label) *Normalizer {
	n := &Normalizer{
		codes:        make(map[string]struct{}, len(codes)),
		placeholders: make(map[string]struct{}, len(placeholders)),
		labels:       make(map[string]string, len(labels)),
	}
	for _, c := range codes {
		n.codes[c] = struct{}{}
	}
	for _, p := range placeholders {
		n.placeholders[placeholderKey(p)] = struct{}{}
	}
	for _, l := range labels {
		if _, ok := n.codes[l.Code]; !ok {
			panic(fmt.Sprintf("normalize: label %q maps to unknown code %q", l.Text, l.Code))
		}
		text := strings.TrimSpace(l.Text)
		if prev, ok := n.labels[text]; ok && prev != l.Code {
			panic(fmt.Sprintf("normalize: label %q maps to both %q and %q", l.Text, prev, l.Code))
		}
		n.labels[text] = l.Code
	}
	return n
}

// Resolve returns the canonical code for raw. A value that already is a code
// is returned unchanged; otherwise the label table is consulted.
func (n *Normalizer) Resolve(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if _, ok := n.codes[s]; ok {
		return s, true
	}
	code, ok := n.labels[s]
	return code, ok
}

// IsPlaceholder reports whether raw means "nothing selected": blank, or one of
// the prompt texts. Prompts match regardless of surrounding spaces and case.
func (n *Normalizer) IsPlaceholder(raw string) bool {
	key := placeholderKey(raw)
	if key == "" {
		return true
	}
	_, ok := n.placeholders[key]
	return ok
}

// IsCode reports whether raw, once trimmed, is one of the canonical codes.
func (n *Normalizer) IsCode(raw string) bool {
	_, ok := n.codes[strings.TrimSpace(raw)]
	return ok
}

// Codes returns the canonical codes in lexical order.
func (n *Normalizer) Codes() []string {
	out := make([]string, 0, len(n.codes))
	for c := range n.codes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func placeholderKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
