//
//  Copyright 2006-2019 WebPKI.org (http://webpki.org).
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      https://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

// This package transforms JSON data in UTF-8 according to:
// https://tools.ietf.org/html/draft-rundgren-json-canonicalization-scheme-02

package jsoncanonicalizer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf16"
)

var asciiEscapes = map[rune]string{
	'\\': "\\\\",
	'"':  "\\\"",
	'\b': "\\b",
	'\f': "\\f",
	'\n': "\\n",
	'\r': "\\r",
	'\t': "\\t",
}

// Transform converts raw JSON in UTF-8 into its canonical representation:
// no insignificant whitespace, object properties sorted by the UTF-16
// code units of their names, and numbers in ES6 serialization form.
func Transform(jsonData []byte) ([]byte, error) {
	decoder := json.NewDecoder(bytes.NewReader(jsonData))
	decoder.UseNumber()

	var parsed interface{}
	if err := decoder.Decode(&parsed); err != nil {
		return nil, err
	}
	// Only whitespace may follow the single top-level value
	if err := checkTrailer(decoder); err != nil {
		return nil, err
	}

	var buffer strings.Builder
	if err := serialize(parsed, &buffer); err != nil {
		return nil, err
	}
	return []byte(buffer.String()), nil
}

func checkTrailer(decoder *json.Decoder) error {
	var dummy interface{}
	err := decoder.Decode(&dummy)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	return errors.New("Improperly terminated JSON object")
}

func serialize(value interface{}, buffer *strings.Builder) error {
	switch typed := value.(type) {
	case nil:
		buffer.WriteString("null")
	case bool:
		if typed {
			buffer.WriteString("true")
		} else {
			buffer.WriteString("false")
		}
	case json.Number:
		ieeeF64, err := typed.Float64()
		if err != nil {
			return err
		}
		formatted, err := NumberToJSON(ieeeF64)
		if err != nil {
			return err
		}
		buffer.WriteString(formatted)
	case string:
		serializeString(typed, buffer)
	case []interface{}:
		buffer.WriteByte('[')
		for i, element := range typed {
			if i > 0 {
				buffer.WriteByte(',')
			}
			if err := serialize(element, buffer); err != nil {
				return err
			}
		}
		buffer.WriteByte(']')
	case map[string]interface{}:
		names := make([]string, 0, len(typed))
		for name := range typed {
			names = append(names, name)
		}
		// Sort property names by their UTF-16 code unit representation
		sort.Slice(names, func(i, j int) bool {
			return lessUTF16(names[i], names[j])
		})
		buffer.WriteByte('{')
		for i, name := range names {
			if i > 0 {
				buffer.WriteByte(',')
			}
			serializeString(name, buffer)
			buffer.WriteByte(':')
			if err := serialize(typed[name], buffer); err != nil {
				return err
			}
		}
		buffer.WriteByte('}')
	default:
		return fmt.Errorf("Unknown JSON type: %T", value)
	}
	return nil
}

func serializeString(value string, buffer *strings.Builder) {
	buffer.WriteByte('"')
	for _, c := range value {
		if esc, found := asciiEscapes[c]; found {
			buffer.WriteString(esc)
		} else if c < 0x20 {
			// Other control characters must use Unicode escape notation
			fmt.Fprintf(buffer, "\\u%04x", c)
		} else {
			buffer.WriteRune(c)
		}
	}
	buffer.WriteByte('"')
}

func lessUTF16(a, b string) bool {
	ua := utf16.Encode([]rune(a))
	ub := utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			return ua[i] < ub[i]
		}
	}
	return len(ua) < len(ub)
}
