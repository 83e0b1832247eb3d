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

package jsonld_test

import (
	"testing"

	. "github.com/jsonld-go/go-jsonld/jsonld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRDFFromValueAndFromRDFToValue(t *testing.T) {
	doc := JObject{
		"@id":                   JString("ex:subject"),
		"http://example.com/p": JArray{JObject{"@value": JString("value")}},
	}

	api := NewEngine()
	opts := NewOptions("")

	dataset, err := api.ToRDFFromValue(doc, opts)
	require.NoError(t, err)
	require.Len(t, dataset.Graphs["@default"], 1)

	nodes, err := api.FromRDFToValue(dataset, opts)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	obj, ok := nodes[0].(JObject)
	require.True(t, ok)
	assert.Equal(t, JString("ex:subject"), obj["@id"])
}

func TestGenerateNodeMapFromValue(t *testing.T) {
	doc := JArray{
		JObject{
			"@id":                   JString("ex:subject"),
			"http://example.com/p": JArray{JObject{"@value": JString("value")}},
		},
	}

	api := NewEngine()
	graphMap, err := api.GenerateNodeMapFromValue(doc, NewBlankNodeNamer("_:b"))
	require.NoError(t, err)

	defaultGraph, ok := graphMap["@default"].(JObject)
	require.True(t, ok)

	node, ok := defaultGraph["ex:subject"].(JObject)
	require.True(t, ok)
	assert.Equal(t, JString("ex:subject"), node["@id"])
}
