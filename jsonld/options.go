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

const (
	JsonLd_1_0       = "json-ld-1.0"              //nolint:stylecheck
	JsonLd_1_1       = "json-ld-1.1"              //nolint:stylecheck
	JsonLd_1_1_Frame = "json-ld-1.1-expand-frame" //nolint:stylecheck
)

// Options controls the behaviour of every public Processor operation.
// http://www.w3.org/TR/json-ld-api/#the-jsonldoptions-type
type Options struct { //nolint:stylecheck

	// Base options: http://www.w3.org/TR/json-ld-api/#idl-def-Options

	// http://www.w3.org/TR/json-ld-api/#widl-Options-base
	Base string
	// http://www.w3.org/TR/json-ld-api/#widl-Options-compactArrays
	CompactArrays bool
	// http://www.w3.org/TR/json-ld-api/#widl-Options-expandContext
	ExpandContext interface{}
	// http://www.w3.org/TR/json-ld-api/#widl-Options-processingMode
	ProcessingMode string
	// http://www.w3.org/TR/json-ld-api/#widl-Options-documentLoader
	DocumentLoader DocumentLoader

	// Frame options: http://json-ld.org/spec/latest/json-ld-framing/

	// Embed is the default @embed behaviour: true embeds matched subjects inline,
	// false leaves them as node references. Individual frames may override this
	// per property using an explicit @embed keyword.
	Embed        bool
	Explicit     bool
	RequireAll   bool
	FrameDefault bool
	OmitDefault  bool
	OmitGraph    bool

	// RDF conversion options: http://www.w3.org/TR/json-ld-api/#serialize-rdf-as-json-ld-algorithm

	UseRdfType            bool
	UseNativeTypes        bool
	ProduceGeneralizedRdf bool

	// Strict rejects documents whose interpretation would otherwise be
	// ambiguous, such as compacting two @list values into one @list container.
	Strict bool

	// KeepFreeFloatingNodes retains top-level nodes that carry no triples
	// (e.g. an object with only @id) in expanded output instead of pruning them.
	KeepFreeFloatingNodes bool

	// Optimize is carried and copied with the other options; no algorithm in
	// this package reads it.
	Optimize bool

	// Ignored keys are copied into expanded/compacted output untouched,
	// bypassing keyword and term expansion entirely.
	Ignored map[string]bool

	// The following properties aren't in the spec

	InputFormat   string
	Format        string
	Algorithm     string
	UseNamespaces bool
	OutputForm    string
	SafeMode      bool
}

// NewOptions creates and returns new instance of Options with the given base.
func NewOptions(base string) *Options { //nolint:stylecheck
	return &Options{
		Base:                  base,
		CompactArrays:         true,
		ProcessingMode:        JsonLd_1_1,
		DocumentLoader:        NewDefaultDocumentLoader(nil),
		Embed:                 true,
		Explicit:              false,
		RequireAll:            true,
		FrameDefault:          false,
		OmitDefault:           false,
		OmitGraph:             false,
		UseRdfType:            false,
		UseNativeTypes:        false,
		ProduceGeneralizedRdf: false,
		Strict:                false,
		KeepFreeFloatingNodes: false,
		Optimize:              false,
		Ignored:               nil,
		InputFormat:           "",
		Format:                "",
		Algorithm:             AlgorithmURGNA2012,
		UseNamespaces:         false,
		OutputForm:            "",
		SafeMode:              false,
	}
}

// Copy creates a deep copy of Options object.
func (opt *Options) Copy() *Options {
	var ignored map[string]bool
	if opt.Ignored != nil {
		ignored = make(map[string]bool, len(opt.Ignored))
		for k, v := range opt.Ignored {
			ignored[k] = v
		}
	}
	return &Options{
		Base:                  opt.Base,
		CompactArrays:         opt.CompactArrays,
		ExpandContext:         opt.ExpandContext,
		ProcessingMode:        opt.ProcessingMode,
		DocumentLoader:        opt.DocumentLoader,
		Embed:                 opt.Embed,
		Explicit:              opt.Explicit,
		RequireAll:            opt.RequireAll,
		FrameDefault:          opt.FrameDefault,
		OmitDefault:           opt.OmitDefault,
		OmitGraph:             opt.OmitGraph,
		UseRdfType:            opt.UseRdfType,
		UseNativeTypes:        opt.UseNativeTypes,
		ProduceGeneralizedRdf: opt.ProduceGeneralizedRdf,
		Strict:                opt.Strict,
		KeepFreeFloatingNodes: opt.KeepFreeFloatingNodes,
		Optimize:              opt.Optimize,
		Ignored:               ignored,
		InputFormat:           opt.InputFormat,
		Format:                opt.Format,
		Algorithm:             opt.Algorithm,
		UseNamespaces:         opt.UseNamespaces,
		OutputForm:            opt.OutputForm,
		SafeMode:              opt.SafeMode,
	}
}
