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
	"fmt"
)

// BlankNodeNamer issues unique identifiers, keeping track of any previously issued identifiers.
type BlankNodeNamer struct {
	prefix        string
	counter       int
	existing      map[string]string
	existingOrder []string
}

// NewBlankNodeNamer creates and returns a new BlankNodeNamer.
func NewBlankNodeNamer(prefix string) *BlankNodeNamer {
	return &BlankNodeNamer{
		prefix:        prefix,
		counter:       0,
		existing:      make(map[string]string),
		existingOrder: make([]string, 0),
	}
}

// Clone copies this BlankNodeNamer.
func (ii *BlankNodeNamer) Clone() *BlankNodeNamer {
	copy := &BlankNodeNamer{
		prefix:        ii.prefix,
		counter:       ii.counter,
		existing:      make(map[string]string, len(ii.existing)),
		existingOrder: make([]string, len(ii.existingOrder)),
	}
	i := 0
	for k, v := range ii.existing {
		copy.existing[k] = v
		copy.existingOrder[i] = ii.existingOrder[i]
		i++
	}

	return copy
}

// GetId Gets the new identifier for the given old identifier, where if no old
// identifier is given a new identifier will be generated.
func (ii *BlankNodeNamer) GetId(oldId string) string {
	if oldId != "" {
		// return existing old identifier
		if ex, present := ii.existing[oldId]; present {
			return ex
		}
	}

	id := ii.prefix + fmt.Sprintf("%d", ii.counter)
	ii.counter++

	if oldId != "" {
		ii.existing[oldId] = id
		ii.existingOrder = append(ii.existingOrder, oldId)
	}

	return id
}

// HasId returns True if the given old identifier has already been assigned a new identifier.
func (ii *BlankNodeNamer) HasId(oldId string) bool {
	_, hasKey := ii.existing[oldId]
	return hasKey
}

// IssueNode is GetId wrapped in the BlankNode Node type, for callers that
// need a blank node value rather than its bare identifier string.
func (ii *BlankNodeNamer) IssueNode(oldId string) *BlankNode {
	return NewBlankNode(ii.GetId(oldId))
}

// Issued returns the old identifiers seen so far, in issuing order.
func (ii *BlankNodeNamer) Issued() []string {
	return append([]string(nil), ii.existingOrder...)
}
