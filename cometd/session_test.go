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
	"testing"

	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/require"
)

func TestSession_Bind(t *testing.T) {
	fakerInstance := faker.New()

	t.Run("binding assigns client id and cookies", func(t *testing.T) {
		clientID := fakerInstance.UUID().V4()
		cookies := []string{fakerInstance.Lorem().Word(), fakerInstance.Lorem().Word()}

		session := NewSession()
		require.False(t, session.Bound())

		session.Bind(clientID, cookies)

		require.True(t, session.Bound())
		require.Equal(t, clientID, session.ClientID())
		require.Equal(t, cookies, session.Cookies())
	})

	t.Run("rebinding replaces cookies wholesale", func(t *testing.T) {
		session := NewSession()
		session.Bind(fakerInstance.UUID().V4(), []string{"first=1", "second=2"})

		session.Bind(fakerInstance.UUID().V4(), []string{"third=3"})

		require.Equal(t, []string{"third=3"}, session.Cookies())
	})

	t.Run("cookies are copied in and out", func(t *testing.T) {
		source := []string{"a=1"}

		session := NewSession()
		session.Bind("1234", source)

		source[0] = "mutated"
		require.Equal(t, []string{"a=1"}, session.Cookies())

		leaked := session.Cookies()
		leaked[0] = "mutated"
		require.Equal(t, []string{"a=1"}, session.Cookies())
	})
}

func TestSession_Reset(t *testing.T) {
	session := NewSession()
	session.Bind("1234", []string{"cookie=value"})
	session.recordRetry()

	session.Reset()

	require.False(t, session.Bound())
	require.Empty(t, session.ClientID())
	require.Empty(t, session.Cookies())
	require.Zero(t, session.retryCount())
}

func TestSession_OperationScopesRetryCounter(t *testing.T) {
	session := NewSession()

	session.beginOperation()
	session.recordRetry()
	session.recordRetry()
	require.Equal(t, 2, session.retryCount())

	session.endOperation()
	require.Zero(t, session.retryCount())

	// A fresh operation never inherits a previous counter.
	session.beginOperation()
	require.Zero(t, session.retryCount())
}
