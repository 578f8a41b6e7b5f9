// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package chunky

import (
	"github.com/rs/zerolog"
)

// trace starts a debug event for this parse, tagged with the current nesting
// depth. Returns nil (which zerolog treats as a no-op event) when tracing is
// disabled.
func (c *Cursor) trace() *zerolog.Event {
	return c.shared.logger.Debug().Int("depth", c.shared.depth)
}

// enter increases the trace nesting depth; the returned function restores it.
func (c *Cursor) enter() func() {
	c.shared.depth++
	return func() { c.shared.depth-- }
}
