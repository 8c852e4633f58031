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

	"github.com/matryer/is"

	"github.com/miquido/cometd-client/cometd/responses"
)

func Test_decide(t *testing.T) {
	tests := []struct {
		name       string
		advice     *responses.Advice
		retryCount int
		maxRetries int
		want       Decision
	}{
		{
			name:       "absent advice is terminal",
			advice:     nil,
			retryCount: 1,
			maxRetries: 10,
			want:       GiveUp,
		},
		{
			name:       "retry advice within budget",
			advice:     &responses.Advice{Reconnect: responses.AdviceReconnectRetry},
			retryCount: 1,
			maxRetries: 3,
			want:       FollowRetry,
		},
		{
			name:       "retry advice at the budget boundary",
			advice:     &responses.Advice{Reconnect: responses.AdviceReconnectRetry},
			retryCount: 3,
			maxRetries: 3,
			want:       FollowRetry,
		},
		{
			name:       "retry advice beyond the budget",
			advice:     &responses.Advice{Reconnect: responses.AdviceReconnectRetry},
			retryCount: 4,
			maxRetries: 3,
			want:       GiveUp,
		},
		{
			name:       "handshake advice within budget",
			advice:     &responses.Advice{Reconnect: responses.AdviceReconnectHandshake},
			retryCount: 2,
			maxRetries: 3,
			want:       FollowHandshake,
		},
		{
			name:       "handshake advice beyond the budget",
			advice:     &responses.Advice{Reconnect: responses.AdviceReconnectHandshake},
			retryCount: 4,
			maxRetries: 3,
			want:       GiveUp,
		},
		{
			name:       "none advice with budget remaining",
			advice:     &responses.Advice{Reconnect: responses.AdviceReconnectNone},
			retryCount: 1,
			maxRetries: 10,
			want:       GiveUp,
		},
		{
			name:       "advice without a reconnect field",
			advice:     &responses.Advice{Timeout: 110000},
			retryCount: 1,
			maxRetries: 10,
			want:       GiveUp,
		},
		{
			name:       "zero budget declines the first retry",
			advice:     &responses.Advice{Reconnect: responses.AdviceReconnectRetry},
			retryCount: 1,
			maxRetries: 0,
			want:       GiveUp,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)

			is.Equal(decide(tc.advice, tc.retryCount, tc.maxRetries), tc.want)
		})
	}
}
