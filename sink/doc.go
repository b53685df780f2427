// SPDX-License-Identifier: EPL-2.0

// Package sink hands fixed-size stereo buffers between the mixer and an
// audio device.
//
// A Pool owns a fixed set of Buffers. At any moment each Buffer sits in
// exactly one place: the free queue, the full queue, or the hands of the
// side that took it. The producer side never blocks:
//
//	for {
//	    buf, ok := pool.Take()
//	    if !ok {
//	        break // device still has enough queued audio
//	    }
//	    fill(buf)
//	    pool.Give(buf)
//	}
//
// The consumer side either pulls buffers with Next and returns them with
// Recycle, or reads bytes through the io.Reader implementation, which is what
// pull-model devices such as oto players expect.
package sink
