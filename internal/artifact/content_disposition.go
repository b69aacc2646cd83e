package artifact

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
)

// FilenameFromContentDisposition extracts the file name from a
// Content-Disposition header value. An RFC 5987 "filename*" parameter wins
// over "filename" when it decodes. Quoted values may contain ';' and
// backslash escapes; unquoted values end at the next ';'. Surrounding quote
// characters are stripped. It reports false when no non-empty name is found.
func FilenameFromContentDisposition(header string) (string, bool) {
	params := dispositionParams(header)

	if v, ok := params["filename*"]; ok {
		if name, ok := decodeExtValue(v); ok && name != "" {
			return name, true
		}
	}

	if v, ok := params["filename"]; ok {
		name := strings.TrimSpace(strings.Trim(v, `"'`))
		if name != "" {
			return name, true
		}
	}

	return "", false
}

// dispositionParams splits header into lower-cased parameter names and raw
// values. Segments without '=' (the disposition type) are skipped and the
// first occurrence of a name wins.
func dispositionParams(header string) map[string]string {
	params := make(map[string]string)
	n := len(header)

	for i := 0; i < n; {
		start := i
		for i < n && header[i] != '=' && header[i] != ';' {
			i++
		}
		key := strings.ToLower(strings.TrimSpace(header[start:i]))
		if i >= n || header[i] == ';' {
			i++
			continue
		}
		i++ // '='

		for i < n && (header[i] == ' ' || header[i] == '\t') {
			i++
		}

		var value string
		if i < n && (header[i] == '"' || header[i] == '\'') {
			value, i = quotedValue(header, i)
			for i < n && header[i] != ';' {
				i++
			}
		} else {
			start = i
			for i < n && header[i] != ';' {
				i++
			}
			value = strings.TrimSpace(header[start:i])
		}
		i++ // ';'

		if _, seen := params[key]; key != "" && !seen {
			params[key] = value
		}
	}

	return params
}

// quotedValue reads the value opened by the quote at header[i] and returns
// it with the index just past the closing quote. Backslash escapes apply
// inside double quotes only. An unterminated value runs to the end.
func quotedValue(header string, i int) (string, int) {
	quote := header[i]
	i++

	var b strings.Builder
	for i < len(header) && header[i] != quote {
		if quote == '"' && header[i] == '\\' && i+1 < len(header) {
			i++
		}
		b.WriteByte(header[i])
		i++
	}

	return b.String(), i + 1
}

// decodeExtValue decodes charset'language'percent-encoded.
func decodeExtValue(v string) (string, bool) {
	parts := strings.SplitN(strings.Trim(v, `"`), "'", 3)
	if len(parts) != 3 {
		return "", false
	}

	raw, err := url.PathUnescape(parts[2])
	if err != nil {
		return "", false
	}

	charset := strings.TrimSpace(parts[0])
	if charset == "" || strings.EqualFold(charset, "utf-8") {
		if !utf8.ValidString(raw) {
			return "", false
		}
		return raw, true
	}

	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return "", false
	}
	decoded, err := enc.NewDecoder().String(raw)
	if err != nil {
		return "", false
	}

	return decoded, true
}
