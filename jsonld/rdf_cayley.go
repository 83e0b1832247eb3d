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
	"sort"
	"strings"

	cquad "github.com/cayleygraph/quad"
)

// nodeToCayleyValue converts a Node into the cayley quad.Value it represents.
// Blank node labels lose their "_:" prefix on the way out: cquad.BNode holds
// the bare label and re-attaches the prefix itself when stringified.
func nodeToCayleyValue(n Node) cquad.Value {
	switch v := n.(type) {
	case *IRI:
		return cquad.IRI(v.Value)
	case *BlankNode:
		return cquad.BNode(strings.TrimPrefix(v.Attribute, "_:"))
	case *Literal:
		if v.Language != "" {
			return cquad.LangString{Value: cquad.String(v.Value), Lang: v.Language}
		}
		if v.Datatype != "" && v.Datatype != XSDString {
			return cquad.TypedString{Value: cquad.String(v.Value), Type: cquad.IRI(v.Datatype)}
		}
		return cquad.String(v.Value)
	default:
		return nil
	}
}

// cayleyValueToNode converts a cayley quad.Value back into a Node.
func cayleyValueToNode(v cquad.Value) Node {
	switch val := v.(type) {
	case cquad.IRI:
		return NewIRI(string(val))
	case cquad.BNode:
		return NewBlankNode("_:" + string(val))
	case cquad.String:
		return NewLiteral(string(val), "", "")
	case cquad.TypedString:
		return NewLiteral(string(val.Value), string(val.Type), "")
	case cquad.LangString:
		return NewLiteral(string(val.Value), RDFLangString, val.Lang)
	default:
		if v == nil {
			return nil
		}
		return NewLiteral(v.String(), "", "")
	}
}

// CayleyQuadSerializer bridges this package's RDFDataset representation with
// github.com/cayleygraph/quad's Quad type, so an expanded document's triples
// can be written straight into a Cayley-backed quad store, or a batch of
// quads read out of one can be turned back into JSON-LD via FromRDF.
type CayleyQuadSerializer struct{}

// Parse turns a []cquad.Quad into an RDFDataset. input must be a []cquad.Quad.
func (s *CayleyQuadSerializer) Parse(input interface{}) (*RDFDataset, error) {
	quads, ok := input.([]cquad.Quad)
	if !ok {
		return nil, NewProcessorError(InvalidInput, "CayleyQuadSerializer.Parse expects a []cayley quad.Quad")
	}

	dataset := NewRDFDataset()
	for _, q := range quads {
		graphName := "@default"
		if q.Label != nil {
			if labelNode := cayleyValueToNode(q.Label); labelNode != nil {
				graphName = labelNode.GetValue()
			}
		}

		quad := NewQuad(
			cayleyValueToNode(q.Subject),
			cayleyValueToNode(q.Predicate),
			cayleyValueToNode(q.Object),
			graphName,
		)
		dataset.Graphs[graphName] = append(dataset.Graphs[graphName], quad)
	}

	return dataset, nil
}

// Serialize converts an RDFDataset into a []cquad.Quad.
func (s *CayleyQuadSerializer) Serialize(dataset *RDFDataset) (interface{}, error) {
	graphNames := make([]string, 0, len(dataset.Graphs))
	for graphName := range dataset.Graphs {
		graphNames = append(graphNames, graphName)
	}
	sort.Strings(graphNames)

	result := make([]cquad.Quad, 0)
	for _, graphName := range graphNames {
		for _, q := range dataset.Graphs[graphName] {
			cq := cquad.Quad{
				Subject:   nodeToCayleyValue(q.Subject),
				Predicate: nodeToCayleyValue(q.Predicate),
				Object:    nodeToCayleyValue(q.Object),
			}
			if graphName != "@default" {
				if strings.HasPrefix(graphName, "_:") {
					cq.Label = cquad.BNode(strings.TrimPrefix(graphName, "_:"))
				} else {
					cq.Label = cquad.IRI(graphName)
				}
			}
			result = append(result, cq)
		}
	}

	return result, nil
}
