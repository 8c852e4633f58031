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

package requests

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequests_MarshalJSON(t *testing.T) {
	t.Run("handshake omits absent optional fields", func(t *testing.T) {
		payload, err := json.Marshal(HandshakeRequest{})

		require.NoError(t, err)
		require.JSONEq(
			t,
			`{"channel":"/meta/handshake","version":"1.0","minimumVersion":"1.0","supportedConnectionTypes":["long-polling"]}`,
			string(payload),
		)
	})

	t.Run("handshake carries ext and id when set", func(t *testing.T) {
		payload, err := json.Marshal(HandshakeRequest{
			Ext: map[string]interface{}{"replay": true},
			ID:  "1",
		})

		require.NoError(t, err)
		require.JSONEq(
			t,
			`{"channel":"/meta/handshake","version":"1.0","minimumVersion":"1.0","supportedConnectionTypes":["long-polling"],"ext":{"replay":true},"id":"1"}`,
			string(payload),
		)
	})

	t.Run("connect binds the client id and connection type", func(t *testing.T) {
		payload, err := json.Marshal(ConnectRequest{ClientID: "1234"})

		require.NoError(t, err)
		require.JSONEq(
			t,
			`{"channel":"/meta/connect","clientId":"1234","connectionType":"long-polling"}`,
			string(payload),
		)
	})

	t.Run("subscribe passes the subscription through unprefixed", func(t *testing.T) {
		payload, err := json.Marshal(SubscribeRequest{
			ClientID:     "1234",
			Subscription: "/topic/foo",
		})

		require.NoError(t, err)
		require.JSONEq(
			t,
			`{"channel":"/meta/subscribe","clientId":"1234","subscription":"/topic/foo"}`,
			string(payload),
		)
	})

	t.Run("publish targets the application channel", func(t *testing.T) {
		payload, err := json.Marshal(PublishRequest{
			ClientID:       "1234",
			PublishChannel: "/topic/foo",
			Data:           map[string]interface{}{"value": 42},
		})

		require.NoError(t, err)
		require.JSONEq(
			t,
			`{"channel":"/topic/foo","clientId":"1234","data":{"value":42}}`,
			string(payload),
		)
	})
}
