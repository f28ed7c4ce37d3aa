package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// record objeto de una colección legada. Los números quedan como json.Number.
type record map[string]any

// readCollection lee un archivo de colección. Acepta UTF-8 o Latin-1 y también
// el formato roto de varios arrays concatenados ("[...][...]").
// Un archivo inexistente o vacío es una colección vacía.
func readCollection(path string) ([]record, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeCollection(raw)
}

func decodeCollection(raw []byte) ([]record, error) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(raw) {
		decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), raw)
		if err != nil {
			return nil, fmt.Errorf("decodificar latin-1: %w", err)
		}
		raw = decoded
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out []record
	for {
		var part []record
		err := dec.Decode(&part)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("json inválido (offset %d): %w", dec.InputOffset(), err)
		}
		out = append(out, part...)
	}
	return out, nil
}

// str devuelve el primer alias con valor no vacío, como texto.
func (r record) str(keys ...string) string {
	for _, k := range keys {
		switch v := r[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number:
			return v.String()
		case bool:
			return strconv.FormatBool(v)
		}
	}
	return ""
}

// num devuelve el primer alias numérico. Textos con coma decimal también valen.
func (r record) num(keys ...string) decimal.Decimal {
	for _, k := range keys {
		switch v := r[k].(type) {
		case json.Number:
			if d, err := decimal.NewFromString(v.String()); err == nil {
				return d
			}
		case string:
			s := strings.Replace(strings.TrimSpace(v), ",", ".", 1)
			if d, err := decimal.NewFromString(s); err == nil {
				return d
			}
		}
	}
	return decimal.Zero
}

// date devuelve el primer alias que sea una fecha ISO, un día YYYY-MM-DD o un epoch en ms.
func (r record) date(keys ...string) (time.Time, bool) {
	for _, k := range keys {
		switch v := r[k].(type) {
		case string:
			if t, ok := parseLegacyTime(v); ok {
				return t, true
			}
		case json.Number:
			if ms, err := v.Int64(); err == nil && ms > 0 {
				return time.UnixMilli(ms).UTC(), true
			}
		}
	}
	return time.Time{}, false
}

func (r record) object(key string) record {
	if m, ok := r[key].(map[string]any); ok {
		return record(m)
	}
	return record{}
}

func (r record) list(key string) []record {
	arr, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]record, 0, len(arr))
	for _, it := range arr {
		if m, ok := it.(map[string]any); ok {
			out = append(out, record(m))
		}
	}
	return out
}

func parseLegacyTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
