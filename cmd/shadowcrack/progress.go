package main

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/hasbyte1/shadowcrack/crack"
)

// barObserver renders one progress bar per candidate length.
type barObserver struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func newBarObserver(w io.Writer) *barObserver {
	return &barObserver{w: w}
}

func (o *barObserver) LengthStarted(length int, space uint64) {
	// -1 renders a spinner when the space does not fit the bar.
	total := int64(-1)
	if space != 0 && space <= 1<<62 {
		total = int64(space)
	}
	o.bar = progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(o.w),
		progressbar.OptionSetDescription(fmt.Sprintf("length %d", length)),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("hash"),
		progressbar.OptionSetWidth(25),
		progressbar.OptionThrottle(200*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func (o *barObserver) Progress(n uint64) {
	if o.bar != nil {
		_ = o.bar.Add64(int64(n))
	}
}

func (o *barObserver) LengthFinished(crack.LengthTiming) {
	if o.bar != nil {
		_ = o.bar.Finish()
	}
}
