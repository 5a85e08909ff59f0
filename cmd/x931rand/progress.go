// Copyright 2014, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import "io"
import "fmt"
import "time"
import "github.com/dustin/go-humanize"

// progress wraps a reader and reports the running byte count to w at most
// once per interval, with a final line when total bytes have been read.
type progress struct {
	r        io.Reader
	w        io.Writer
	total    int64
	done     int64
	interval time.Duration
	last     time.Time
	now      func() time.Time
	finished bool
}

func newProgress(r io.Reader, w io.Writer, total int64, interval time.Duration) *progress {
	return &progress{r: r, w: w, total: total, interval: interval, now: time.Now}
}

func (p *progress) Read(buf []byte) (int, error) {
	// Never ask for more than is left so the count stays exact.
	if rem := p.total - p.done; rem >= 0 && int64(len(buf)) > rem {
		buf = buf[:rem]
	}
	n, err := p.r.Read(buf)
	p.done += int64(n)

	if p.finished {
		return n, err
	}
	if p.done >= p.total {
		p.finished = true
		p.report()
		fmt.Fprintln(p.w)
	} else if now := p.now(); now.Sub(p.last) >= p.interval {
		p.last = now
		p.report()
	}
	return n, err
}

func (p *progress) report() {
	pct := 100
	if p.total > 0 {
		pct = int(float64(p.done) / float64(p.total) * 100)
	}
	fmt.Fprintf(p.w, "\r%s / %s (%d%%)",
		humanize.IBytes(uint64(p.done)), humanize.IBytes(uint64(p.total)), pct)
}
