// Package strapi implements the outbound gateway to the headless content
// backend: a pre-configured HTTP client with a bearer-token request hook, the
// query-string encoder for the backend's filtering dialect, and one typed
// service per resource.
package strapi

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/ibraschwan/karagul/internal/core/ports"
)

// Encode serializes a structured query into the backend's bracketed
// query-string dialect, e.g.
//
//	filters[name][$containsi]=foo&pagination[page]=1&populate=*
//
// Only values are percent-encoded; the structural brackets and dollar
// operators stay literal, exactly as the backend's parser expects. A key or
// operator the backend does not recognise silently matches nothing — that is
// the wire contract, not a defect to compensate for here.
func Encode(q ports.Query) string {
	var e encoder
	for _, f := range q.Filters {
		e.filter("filters", f)
	}
	for i, s := range q.Sort {
		e.add(fmt.Sprintf("sort[%d]", i), s)
	}
	if p := q.Pagination; p != nil {
		if p.Page > 0 {
			e.add("pagination[page]", strconv.Itoa(p.Page))
		}
		if p.PageSize > 0 {
			e.add("pagination[pageSize]", strconv.Itoa(p.PageSize))
		}
		if p.Start > 0 {
			e.add("pagination[start]", strconv.Itoa(p.Start))
		}
		if p.Limit > 0 {
			e.add("pagination[limit]", strconv.Itoa(p.Limit))
		}
	}
	e.populate("populate", q.Populate)
	for i, f := range q.Fields {
		e.add(fmt.Sprintf("fields[%d]", i), f)
	}
	if q.Locale != "" {
		e.add("locale", q.Locale)
	}
	return strings.Join(e.pairs, "&")
}

type encoder struct {
	pairs []string
}

func (e *encoder) add(key, value string) {
	e.pairs = append(e.pairs, key+"="+escapeValue(value))
}

// filter flattens one filter node under the given key prefix. Groups become
// indexed $or/$and lists; conditions expand their dotted attribute path into
// bracketed segments followed by the operator.
func (e *encoder) filter(prefix string, f ports.Filter) {
	switch {
	case len(f.Any) > 0:
		for i, m := range f.Any {
			e.filter(fmt.Sprintf("%s[$or][%d]", prefix, i), m)
		}
	case len(f.All) > 0:
		for i, m := range f.All {
			e.filter(fmt.Sprintf("%s[$and][%d]", prefix, i), m)
		}
	case f.Field != "":
		key := prefix
		for _, seg := range strings.Split(f.Field, ".") {
			key += "[" + seg + "]"
		}
		op := "$" + string(f.Op)
		if f.Op == ports.OpIn {
			for i, v := range toSlice(f.Value) {
				e.add(fmt.Sprintf("%s[%s][%d]", key, op, i), formatValue(v))
			}
			return
		}
		e.add(key+"["+op+"]", formatValue(f.Value))
	}
}

func (e *encoder) populate(prefix string, p ports.Populate) {
	switch {
	case p.All:
		e.add(prefix, "*")
	case len(p.Relations) > 0:
		for i, r := range p.Relations {
			e.add(fmt.Sprintf("%s[%d]", prefix, i), r)
		}
	case len(p.Nested) > 0:
		rels := make([]string, 0, len(p.Nested))
		for r := range p.Nested {
			rels = append(rels, r)
		}
		sort.Strings(rels)
		for _, r := range rels {
			child := p.Nested[r]
			if child.All || len(child.Relations) > 0 || len(child.Nested) > 0 {
				e.populate(prefix+"["+r+"][populate]", child)
			} else {
				e.add(prefix+"["+r+"]", "true")
			}
		}
	}
}

func toSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return []any{v}
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// valueUnescaper undoes the escapes url.QueryEscape applies beyond what
// encodeURIComponent does: spaces become %20 rather than +, and the
// characters encodeURIComponent leaves literal stay literal.
var valueUnescaper = strings.NewReplacer(
	"+", "%20",
	"%2A", "*",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
)

// escapeValue percent-encodes a value the way the backend's qs parser
// expects: the encodeURIComponent escape set, so "*" (the populate-all
// marker) and the other literals go on the wire unescaped.
func escapeValue(s string) string {
	return valueUnescaper.Replace(url.QueryEscape(s))
}
