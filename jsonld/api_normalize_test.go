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

func TestCanonicalBlankNodeCount(t *testing.T) {
	dataset := NewRDFDataset()
	dataset.Graphs["@default"] = []*Quad{
		NewQuad(NewBlankNode("_:a"), NewIRI("http://example.com/p"), NewBlankNode("_:b"), "@default"),
	}

	algo := NewNormalisationAlgorithm(AlgorithmURDNA2015)
	_, err := algo.Main(dataset, NewOptions(""))
	require.NoError(t, err)

	assert.Equal(t, 2, algo.CanonicalBlankNodeCount())
}
