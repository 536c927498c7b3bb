// This file is part of Emucli.
//
// Emucli is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emucli is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emucli.  If not, see <https://www.gnu.org/licenses/>.

package sim

import (
	"context"
	"fmt"
	"time"
)

// a frame-rate limiter for the emulation goroutine. throttling happens only at
// the frame level. with a frame of fixed length the stutter that this would
// cause at low frame rates is not a concern.
type limiter struct {
	lmtr      *time.Ticker
	reqFrames float32
}

func newLimiter(fps float32) *limiter {
	lmtr := &limiter{
		reqFrames: fps,
	}

	rate := float32(1.0) / fps
	dur, _ := time.ParseDuration(fmt.Sprintf("%fs", rate))
	lmtr.lmtr = time.NewTicker(dur)

	return lmtr
}

// wait for the next tick. returns early if the context is cancelled.
func (lmtr *limiter) wait(ctx context.Context) {
	select {
	case <-lmtr.lmtr.C:
	case <-ctx.Done():
	}
}

func (lmtr *limiter) stop() {
	lmtr.lmtr.Stop()
}
