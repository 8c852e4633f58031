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

// Package responses holds the wire-level shapes of Bayeux server responses and
// the rules for telling the variants apart.
//
// Bayeux does not tag responses with a discriminator field; a response batch is
// a JSON array whose elements have to be classified structurally. DecodeBatch
// tries the shapes in a fixed priority order and the first compatible one wins.
package responses

import (
	"encoding/json"

	"github.com/go-errors/errors"
)

// Response is a single classified element of a Bayeux response batch.
type Response interface {
	// GetChannel returns the channel the response was produced on.
	GetChannel() string

	// GetAdvice returns the server advice attached to the response, or nil.
	GetAdvice() *Advice

	// IsSuccessful reports whether the server accepted the request the
	// response acknowledges. Deliveries carry no success flag and always
	// report true.
	IsSuccessful() bool

	// ErrorMessage returns the server-reported failure reason, or an empty
	// string when none was supplied.
	ErrorMessage() string
}

// DecodeBatch classifies a raw Bayeux response batch into typed responses.
//
// Classification order is load-bearing: Errored first (most specific, must not
// be swallowed by the laxer Basic shape), then Handshake, Publish, Delivery,
// and Basic as the fallback. A single element that matches no shape rejects
// the entire batch; there is no partial acceptance within one exchange.
//
// Returns error when:
// * The payload is not a non-empty JSON array
// * Any element cannot be classified.
func DecodeBatch(data []byte) ([]Response, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Errorf("response batch is not a JSON array: %w", err)
	}

	if len(raw) == 0 {
		return nil, errors.New("response batch is empty")
	}

	batch := make([]Response, 0, len(raw))
	for i, element := range raw {
		response, err := classify(element)
		if err != nil {
			return nil, errors.Errorf("response %d of %d: %w", i+1, len(raw), err)
		}

		batch = append(batch, response)
	}

	return batch, nil
}

// classify decodes one batch element into the first structurally compatible
// response shape.
func classify(element json.RawMessage) (Response, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(element, &fields); err != nil {
		return nil, errors.Errorf("response is not a JSON object: %w", err)
	}

	switch {
	case isErrored(fields):
		return decodeInto[*Errored](element)

	case isHandshake(fields):
		return decodeInto[*Handshake](element)

	case isPublish(fields):
		return decodeInto[*Publish](element)

	case isDelivery(fields):
		return decodeInto[*Delivery](element)

	case isBasic(fields):
		return decodeInto[*Basic](element)

	default:
		return nil, errors.New("response matches no known shape")
	}
}

func decodeInto[T Response](element json.RawMessage) (Response, error) {
	var response T
	if err := json.Unmarshal(element, &response); err != nil {
		return nil, errors.Errorf("response shape mismatch: %w", err)
	}

	return response, nil
}

func isErrored(fields map[string]json.RawMessage) bool {
	successful, ok := boolField(fields, "successful")

	return hasString(fields, "error") && ok && !successful
}

func isHandshake(fields map[string]json.RawMessage) bool {
	return hasString(fields, "version") &&
		hasString(fields, "clientId") &&
		hasStrings(fields, "supportedConnectionTypes")
}

func isPublish(fields map[string]json.RawMessage) bool {
	_, successful := boolField(fields, "successful")
	_, data := fields["data"]

	return data && successful && hasString(fields, "clientId")
}

func isDelivery(fields map[string]json.RawMessage) bool {
	_, successful := fields["successful"]
	_, data := fields["data"]

	return data && !successful
}

func isBasic(fields map[string]json.RawMessage) bool {
	_, successful := boolField(fields, "successful")

	return hasString(fields, "channel") && successful
}

func hasString(fields map[string]json.RawMessage, key string) bool {
	raw, ok := fields[key]
	if !ok {
		return false
	}

	var value string

	return json.Unmarshal(raw, &value) == nil
}

func hasStrings(fields map[string]json.RawMessage, key string) bool {
	raw, ok := fields[key]
	if !ok {
		return false
	}

	var value []string

	return json.Unmarshal(raw, &value) == nil
}

func boolField(fields map[string]json.RawMessage, key string) (value, ok bool) {
	raw, present := fields[key]
	if !present {
		return false, false
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		return false, false
	}

	return value, true
}
