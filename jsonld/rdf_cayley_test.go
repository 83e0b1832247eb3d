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

	cquad "github.com/cayleygraph/quad"
	. "github.com/jsonld-go/go-jsonld/jsonld"
	"github.com/stretchr/testify/assert"
)

func TestCayleyQuadSerializer_RoundTrip(t *testing.T) {
	dataset := NewRDFDataset()
	dataset.Graphs["@default"] = []*Quad{
		NewQuad(NewIRI("http://example.org/a"), NewIRI("http://example.org/name"),
			NewLiteral("Alice", XSDString, ""), "@default"),
		NewQuad(NewBlankNode("_:b0"), NewIRI(RDFType), NewIRI("http://example.org/Person"), "@default"),
	}

	serializer := &CayleyQuadSerializer{}

	serialized, err := serializer.Serialize(dataset)
	assert.NoError(t, err)

	quads, ok := serialized.([]cquad.Quad)
	assert.True(t, ok)
	assert.Len(t, quads, 2)
	assert.Equal(t, cquad.IRI("http://example.org/a"), quads[0].Subject)
	assert.Equal(t, cquad.IRI("http://example.org/name"), quads[0].Predicate)
	assert.Equal(t, cquad.String("Alice"), quads[0].Object)

	roundTripped, err := serializer.Parse(quads)
	assert.NoError(t, err)
	assert.Len(t, roundTripped.Graphs["@default"], 2)
	assert.True(t, dataset.Graphs["@default"][0].Equal(roundTripped.Graphs["@default"][0]))
}

func TestCayleyQuadSerializer_ParseRejectsWrongType(t *testing.T) {
	serializer := &CayleyQuadSerializer{}
	_, err := serializer.Parse("not a []cquad.Quad")
	assert.Error(t, err)
}
