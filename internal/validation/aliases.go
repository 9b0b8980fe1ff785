package validation

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// NormalizeAliases folds alias keys of a decoded JSON object into their
// canonical field. For each canonical field the aliases are tried in order
// and the first non-empty value is kept; the alias keys are then removed.
//
//	{"prayer_intention": "peace", "prayer": ""} -> {"prayer": "peace"}
func NormalizeAliases(fields map[string]json.RawMessage, aliases map[string][]string) {
	for canonical, names := range aliases {
		for _, name := range names {
			value, ok := fields[name]
			if !ok || isBlank(value) {
				continue
			}
			fields[canonical] = value
			break
		}
		for _, name := range names {
			if name != canonical {
				delete(fields, name)
			}
		}
	}
}

// isBlank treats null, "" and whitespace-only strings as absent.
func isBlank(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	if trimmed[0] != '"' {
		return false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return false
	}
	return strings.TrimSpace(s) == ""
}

// normalizeBody rewrites a JSON request body in place with aliases folded.
// Bodies that are not JSON objects are restored untouched so the binder
// reports them.
func normalizeBody(r *http.Request, aliases map[string][]string) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return nil
	}

	raw, err := io.ReadAll(r.Body)
	_ = r.Body.Close()
	if err != nil {
		return err
	}

	body := raw
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err == nil && fields != nil {
		NormalizeAliases(fields, aliases)
		if encoded, err := json.Marshal(fields); err == nil {
			body = encoded
		}
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	r.ContentLength = int64(len(body))
	return nil
}
