// Copyright 2015-2017 Piprate Limited
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jsonld

import (
	"encoding/json"
	"fmt"
)

// ValueKind identifies which alternative of JValue is populated.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// JValue is the tagged union backing every piece of JSON-LD document data
// that isn't already wrapped in a dedicated type (Node, TermDefinition...).
// Most of the processing pipeline still walks plain interface{} trees
// produced by encoding/json, the way the JSON-LD algorithms are written;
// JValue is used where a value's shape needs to be pinned down once and
// then pattern-matched repeatedly, such as a term definition's @language
// or @direction, which must distinguish "not set" from "set to null" from
// "set to a string" - three states a bare interface{} nil can't carry
// without a side channel.
type JValue interface {
	Kind() ValueKind
	Raw() interface{}
}

// JNull is the JValue for JSON null.
type JNull struct{}

func (JNull) Kind() ValueKind  { return KindNull }
func (JNull) Raw() interface{} { return nil }

// JBool is the JValue for a JSON boolean.
type JBool bool

func (b JBool) Kind() ValueKind  { return KindBool }
func (b JBool) Raw() interface{} { return bool(b) }

// JNumber is the JValue for a JSON number. JSON-LD source documents are
// decoded with encoding/json's default float64 representation, so that is
// what JNumber carries.
type JNumber float64

func (n JNumber) Kind() ValueKind  { return KindNumber }
func (n JNumber) Raw() interface{} { return float64(n) }

// JString is the JValue for a JSON string.
type JString string

func (s JString) Kind() ValueKind  { return KindString }
func (s JString) Raw() interface{} { return string(s) }

// JArray is the JValue for a JSON array.
type JArray []JValue

func (a JArray) Kind() ValueKind { return KindArray }

func (a JArray) Raw() interface{} {
	raw := make([]interface{}, len(a))
	for i, v := range a {
		raw[i] = v.Raw()
	}
	return raw
}

// JObject is the JValue for a JSON object. Key order is not preserved;
// callers that need a stable iteration order should sort the keys
// themselves, the way the rest of this module does via GetOrderedKeys.
type JObject map[string]JValue

func (o JObject) Kind() ValueKind { return KindObject }

func (o JObject) Raw() interface{} {
	raw := make(map[string]interface{}, len(o))
	for k, v := range o {
		raw[k] = v.Raw()
	}
	return raw
}

// FromRaw converts a value produced by encoding/json (or built up in the
// same shape by this module's algorithms) into a JValue. Types outside the
// usual decode set are coerced to JString via fmt.Sprintf rather than
// rejected, so callers building JValue from hand-written Go literals in
// tests don't have to round-trip through JSON first.
func FromRaw(v interface{}) JValue {
	switch t := v.(type) {
	case nil:
		return JNull{}
	case JValue:
		return t
	case bool:
		return JBool(t)
	case float64:
		return JNumber(t)
	case int:
		return JNumber(float64(t))
	case int64:
		return JNumber(float64(t))
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return JNumber(f)
		}
		return JString(t.String())
	case string:
		return JString(t)
	case []interface{}:
		arr := make(JArray, len(t))
		for i, e := range t {
			arr[i] = FromRaw(e)
		}
		return arr
	case map[string]interface{}:
		obj := make(JObject, len(t))
		for k, e := range t {
			obj[k] = FromRaw(e)
		}
		return obj
	default:
		return JString(fmt.Sprintf("%v", t))
	}
}

// RawString returns a JValue's underlying string and whether it held one.
func RawString(v JValue) (string, bool) {
	s, ok := v.(JString)
	return string(s), ok
}
