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
	"strings"
	"testing"

	. "github.com/jsonld-go/go-jsonld/jsonld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNQuadRDFSerializerSerializeSorted(t *testing.T) {
	dataset := NewRDFDataset()
	dataset.Graphs["@default"] = []*Quad{
		NewQuad(NewIRI("http://example.com/b"), NewIRI("http://example.com/p"), NewIRI("http://example.com/o"), "@default"),
		NewQuad(NewIRI("http://example.com/a"), NewIRI("http://example.com/p"), NewIRI("http://example.com/o"), "@default"),
	}

	out, err := (&NQuadRDFSerializer{}).SerializeSorted(dataset)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "<http://example.com/a>"))
	assert.True(t, strings.HasPrefix(lines[1], "<http://example.com/b>"))
}
