package searchtime

import (
	"testing"
	"time"
)

func TestTrackReturnsAStopFunc(t *testing.T) {
	stop := Track("unit-test")
	time.Sleep(time.Millisecond)
	stop() // must not panic; output goes to the standard logger
}
