// Copyright © 2025 Miquido
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

package cometd

import (
	"encoding/json"

	"github.com/miquido/cometd-client/cometd/requests"
	"github.com/miquido/cometd-client/cometd/responses"
)

// Codec turns typed requests into wire bytes and raw response batches into
// classified responses.
type Codec interface {
	Encode(request requests.Request) ([]byte, error)
	DecodeBatch(data []byte) ([]responses.Response, error)
}

// jsonCodec is the stock JSON codec; requests serialize themselves and
// batches go through the priority-ordered classifier.
type jsonCodec struct{}

func (jsonCodec) Encode(request requests.Request) ([]byte, error) {
	return json.Marshal(request)
}

func (jsonCodec) DecodeBatch(data []byte) ([]responses.Response, error) {
	return responses.DecodeBatch(data)
}
