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
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// defaultRemoteContextTTL bounds how long a remote context stays in a
// RistrettoDocumentLoader's cache before it is fetched again.
const defaultRemoteContextTTL = 1 * time.Hour

// RistrettoDocumentLoader is a CachingDocumentLoader alternative backed by a
// bounded, concurrent ristretto cache instead of an unbounded map. Unlike
// CachingDocumentLoader, entries are evicted under memory pressure and expire
// after a TTL, which matters for long-running processes that resolve many
// distinct remote contexts over their lifetime.
type RistrettoDocumentLoader struct {
	nextLoader DocumentLoader
	cache      *ristretto.Cache[string, *RemoteDocument]
	ttl        time.Duration
}

// NewRistrettoDocumentLoader creates a RistrettoDocumentLoader delegating
// cache misses to nextLoader. maxCost bounds the cache's total cost in bytes
// (ristretto's NumCounters is derived from it); a zero or negative value
// selects a 32MiB default.
func NewRistrettoDocumentLoader(nextLoader DocumentLoader, maxCost int64) (*RistrettoDocumentLoader, error) {
	if maxCost <= 0 {
		maxCost = 32 << 20
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, *RemoteDocument]{
		NumCounters: maxCost / 100 * 10,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, NewProcessorError(LoadingDocumentFailed, err)
	}

	return &RistrettoDocumentLoader{
		nextLoader: nextLoader,
		cache:      cache,
		ttl:        defaultRemoteContextTTL,
	}, nil
}

// LoadDocument returns a RemoteDocument containing the contents of the JSON
// resource from the given URL, serving it from cache when available.
func (rdl *RistrettoDocumentLoader) LoadDocument(u string) (*RemoteDocument, error) {
	if doc, cached := rdl.cache.Get(u); cached {
		return doc, nil
	}

	doc, err := rdl.nextLoader.LoadDocument(u)
	if err != nil {
		return nil, err
	}

	cost := int64(1)
	if raw, err := json.Marshal(doc.Document); err == nil && len(raw) > 0 {
		cost = int64(len(raw))
	}
	rdl.cache.SetWithTTL(u, doc, cost, rdl.ttl)
	rdl.cache.Wait()

	return doc, nil
}

// Close releases the cache's background resources. Call it once the loader
// is no longer needed.
func (rdl *RistrettoDocumentLoader) Close() {
	rdl.cache.Close()
}
