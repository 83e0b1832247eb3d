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

// Engine hosts the stateless tree-rewriting algorithms: expansion,
// compaction, flattening, framing, normalisation and RDF conversion.
// It carries no fields of its own; all state needed by a single call
// (active contexts, frame state, namers) lives on that call's stack,
// so a single Engine value can be shared by concurrent Processor calls.
type Engine struct{}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}
