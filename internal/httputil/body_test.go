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

package httputil

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"testing"

	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/require"
)

func TestReadBody(t *testing.T) {
	fakerInstance := faker.New()

	t.Run("fails when content encoding is not supported", func(t *testing.T) {
		response := &http.Response{
			Header: http.Header{
				"Content-Encoding": {"some-unsupported-encoding"},
			},
		}

		payload, err := ReadBody(response)

		require.Nil(t, payload)
		require.EqualError(t, err, `unsupported encoding "some-unsupported-encoding"`)
	})

	t.Run("returns raw body when no encoding is specified", func(t *testing.T) {
		bodyValue := fakerInstance.Lorem().Bytes(16)

		response := &http.Response{
			Body:   io.NopCloser(bytes.NewReader(bodyValue)),
			Header: http.Header{},
		}

		payload, err := ReadBody(response)

		require.NoError(t, err)
		require.Equal(t, bodyValue, payload)
	})

	t.Run("decompresses body when gzip encoding is specified", func(t *testing.T) {
		var buff bytes.Buffer
		bodyValue := fakerInstance.Lorem().Bytes(16)

		gz := gzip.NewWriter(&buff)

		_, err := gz.Write(bodyValue)
		require.NoError(t, err)
		require.NoError(t, gz.Close())

		response := &http.Response{
			Body: io.NopCloser(bytes.NewReader(buff.Bytes())),
			Header: http.Header{
				"Content-Encoding": {"gzip"},
			},
		}

		payload, err := ReadBody(response)

		require.NoError(t, err)
		require.Equal(t, bodyValue, payload)
	})

	t.Run("fails when gzip payload is corrupted", func(t *testing.T) {
		response := &http.Response{
			Body: io.NopCloser(bytes.NewReader([]byte("not gzip at all"))),
			Header: http.Header{
				"Content-Encoding": {"gzip"},
			},
		}

		payload, err := ReadBody(response)

		require.Nil(t, payload)
		require.ErrorContains(t, err, "could not decompress response data")
	})
}
