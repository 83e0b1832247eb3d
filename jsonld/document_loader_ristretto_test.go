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

type countingLoader struct {
	calls int
	doc   *RemoteDocument
}

func (l *countingLoader) LoadDocument(u string) (*RemoteDocument, error) {
	l.calls++
	return l.doc, nil
}

func TestRistrettoDocumentLoader_CachesAfterFirstLoad(t *testing.T) {
	inner := &countingLoader{
		doc: &RemoteDocument{
			DocumentURL: "http://example.org/context.jsonld",
			Document:    map[string]interface{}{"@context": map[string]interface{}{"name": "http://schema.org/name"}},
		},
	}

	loader, err := NewRistrettoDocumentLoader(inner, 0)
	require.NoError(t, err)
	defer loader.Close()

	rd1, err := loader.LoadDocument("http://example.org/context.jsonld")
	require.NoError(t, err)
	assert.Equal(t, inner.doc, rd1)

	rd2, err := loader.LoadDocument("http://example.org/context.jsonld")
	require.NoError(t, err)
	assert.Equal(t, inner.doc, rd2)

	assert.Equal(t, 1, inner.calls, "second load should be served from cache")
}
