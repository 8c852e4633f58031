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

import "github.com/miquido/cometd-client/cometd/responses"

// Decision is the action the engine takes after a failed exchange.
type Decision int

const (
	// GiveUp terminates the operation and surfaces the server error.
	GiveUp Decision = iota

	// FollowRetry re-sends the same logical operation.
	FollowRetry

	// FollowHandshake re-handshakes, then re-sends the operation. The
	// handshake and the retry share one unit of the retry budget.
	FollowHandshake
)

func (d Decision) String() string {
	switch d {
	case FollowRetry:
		return "retry"
	case FollowHandshake:
		return "handshake"
	default:
		return "give-up"
	}
}

// decide maps server advice and the spent retry budget to the next action.
//
// retryCount is the 1-based index of the prospective retry; the boundary is
// retryCount <= maxRetries, so an operation makes at most maxRetries+1
// attempts in total. Absent advice, or advice that declines reconnection,
// means the failure is terminal regardless of the remaining budget.
func decide(advice *responses.Advice, retryCount, maxRetries int) Decision {
	if advice == nil || retryCount > maxRetries {
		return GiveUp
	}

	switch advice.Reconnect {
	case responses.AdviceReconnectHandshake:
		return FollowHandshake

	case responses.AdviceReconnectRetry:
		return FollowRetry

	default:
		return GiveUp
	}
}
