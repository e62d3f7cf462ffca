package wungo

import (
	"sort"
	"strings"
)

// DefaultSignatureFunc derives the cache key for a request from its feature
// list, URL settings, query and response format. Two logically identical
// requests must always map to the same key, so the inputs are canonicalized:
// the feature list is sorted (the combined API response does not depend on
// feature order) and settings are emitted in key order. The outgoing URL is
// unaffected and preserves the caller's feature order.
func DefaultSignatureFunc(req *Request) string {
	features := append([]string(nil), req.Features...)
	sort.Strings(features)

	keys := make([]string, 0, len(req.Settings))
	for k := range req.Settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(strings.Join(features, ","))
	for _, k := range keys {
		b.WriteByte('|')
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(req.Settings[k])
	}
	b.WriteString("|q=")
	b.WriteString(req.Query)
	b.WriteString("|fmt=")
	b.WriteString(string(req.Format))
	return b.String()
}
