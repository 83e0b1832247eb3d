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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepCompareValues(t *testing.T) {
	a := JObject{"@id": JString("ex:a"), "list": JArray{JNumber(1), JNumber(2)}}
	b := JObject{"@id": JString("ex:a"), "list": JArray{JNumber(1), JNumber(2)}}
	c := JObject{"@id": JString("ex:b")}

	assert.True(t, DeepCompareValues(a, b, true))
	assert.False(t, DeepCompareValues(a, c, true))
	assert.True(t, DeepCompareValues(nil, JNull{}, true))
}
