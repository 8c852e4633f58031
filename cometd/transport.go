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
	"bytes"
	"context"
	"net/http"
	"net/http/cookiejar"

	"github.com/go-errors/errors"
	"golang.org/x/net/publicsuffix"

	"github.com/miquido/cometd-client/internal/httputil"
)

// Exchange is the raw outcome of one transport round trip. The HTTP status is
// deliberately absent; Bayeux reports failure inside the body, not on the
// status line.
type Exchange struct {
	// Body is the raw response text to be classified.
	Body []byte

	// Cookies are the cookie values the server set on this response, in
	// order. The engine decides which of them to persist.
	Cookies []string
}

// Transport exchanges one encoded request batch for a raw response. Deadlines
// and cancellation are the transport's concern; the engine suspends only
// here.
type Transport interface {
	Send(ctx context.Context, url string, headers http.Header, body []byte) (*Exchange, error)
}

// NewHTTPTransport builds the default long-polling transport on top of the
// provided HTTP client. When client is nil a fresh one with a public-suffix
// aware cookie jar is used, so server session cookies survive between polls
// even when the caller ignores Exchange.Cookies.
func NewHTTPTransport(client *http.Client) (Transport, error) {
	if client == nil {
		jar, err := cookiejar.New(&cookiejar.Options{
			PublicSuffixList: publicsuffix.List,
		})
		if err != nil {
			return nil, errors.Errorf("failed to initialize cookie jar: %w", err)
		}

		client = &http.Client{Jar: jar}
	}

	return &httpTransport{client: client}, nil
}

type httpTransport struct {
	client *http.Client
}

func (t *httpTransport) Send(ctx context.Context, url string, headers http.Header, body []byte) (*Exchange, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Errorf("failed to prepare request: %w", err)
	}

	for name, values := range headers {
		for _, value := range values {
			request.Header.Add(name, value)
		}
	}

	request.Header.Set("Accept", "application/json")
	request.Header.Set("Accept-Encoding", "gzip;q=1.0, *;q=0.1")
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", "Miquido/CometD-v1.0.0")

	response, err := t.client.Do(request)
	if err != nil {
		return nil, errors.Errorf("failed to send request: %w", err)
	}

	defer response.Body.Close()

	contents, err := httputil.ReadBody(response)
	if err != nil {
		return nil, errors.Errorf("could not read response data: %w", err)
	}

	cookies := make([]string, 0, len(response.Cookies()))
	for _, cookie := range response.Cookies() {
		cookies = append(cookies, cookie.Name+"="+cookie.Value)
	}

	return &Exchange{
		Body:    contents,
		Cookies: cookies,
	}, nil
}
