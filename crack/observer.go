package crack

// Observer receives progress notifications. Progress may be called from
// several goroutines at once when the engine runs with more than one worker;
// the length callbacks are always called from the goroutine running
// [Coordinator.Run].
type Observer interface {
	// LengthStarted is called before a length is searched. space is the
	// number of candidates of that length, or 0 if it overflows a uint64.
	LengthStarted(length int, space uint64)

	// Progress reports that n more candidates have been evaluated.
	Progress(n uint64)

	// LengthFinished is called once a length has been searched, whether or
	// not it produced a match.
	LengthFinished(t LengthTiming)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) LengthStarted(int, uint64) {}
func (NopObserver) Progress(uint64) {}
func (NopObserver) LengthFinished(LengthTiming) {}
