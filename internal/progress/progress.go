// internal/progress/progress.go - Progress reporting for long scans
package progress

import (
	"time"

	pb "gopkg.in/cheggaaa/pb.v1"
)

// Reporter receives position updates during long-running scans. It is purely
// observational: implementations must never influence the scan's results.
type Reporter interface {
	Start(total int64)
	Increment()
	Finish()
}

// Nop is a Reporter that discards all updates
type Nop struct{}

func (Nop) Start(total int64) {}
func (Nop) Increment()        {}
func (Nop) Finish()           {}

// Bar reports progress as a terminal progress bar
type Bar struct {
	prefix  string
	refresh time.Duration
	bar     *pb.ProgressBar
}

// NewBar creates a terminal progress bar reporter with the given row prefix
func NewBar(prefix string, refresh time.Duration) *Bar {
	return &Bar{prefix: prefix, refresh: refresh}
}

func (b *Bar) Start(total int64) {
	b.bar = pb.New64(total).Prefix(b.prefix)
	b.bar.SetRefreshRate(b.refresh)
	b.bar.ShowSpeed = true
	b.bar.Start()
}

func (b *Bar) Increment() {
	if b.bar != nil {
		b.bar.Increment()
	}
}

func (b *Bar) Finish() {
	if b.bar != nil {
		b.bar.Finish()
	}
}
