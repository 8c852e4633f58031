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
	"compress/gzip"
	"io"
	"net/http"

	"github.com/go-errors/errors"
)

// ReadBody drains the response body, transparently decompressing gzip payloads.
// Returns error when the content encoding is unsupported or the body cannot be
// read.
func ReadBody(response *http.Response) ([]byte, error) {
	var reader io.Reader

	switch encoding := response.Header.Get("Content-Encoding"); encoding {
	case "gzip":
		gz, err := gzip.NewReader(response.Body)
		if err != nil {
			return nil, errors.Errorf("could not decompress response data: %w", err)
		}

		defer gz.Close()

		reader = gz

	case "":
		reader = response.Body

	default:
		return nil, errors.Errorf("unsupported encoding %q", encoding)
	}

	contents, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Errorf("could not read response data: %w", err)
	}

	return contents, nil
}
