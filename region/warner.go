package region

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	"github.com/go-stack/stack"
)

// DefaultWarningThreshold is the initial process-wide overrun threshold.
const DefaultWarningThreshold = 100 * time.Millisecond

var warningThreshold atomic.Int64

func init() {
	warningThreshold.Store(int64(DefaultWarningThreshold))
}

// SetWarningThreshold sets the inclusive duration above which an outermost
// invocation of any metric counts as an overrun.
func SetWarningThreshold(d time.Duration) {
	warningThreshold.Store(int64(d))
}

// WarningThreshold returns the current overrun threshold.
func WarningThreshold() time.Duration {
	return time.Duration(warningThreshold.Load())
}

// Overrun describes one invocation that exceeded the warning threshold.
type Overrun struct {
	Metric    string
	Group     string
	Duration  time.Duration
	Threshold time.Duration
	// Location is the call site of the Guard, zero when Stop was called directly
	Location stack.Call
}

// HasLocation reports whether the event carries a call site.
func (o Overrun) HasLocation() bool {
	return o.Location.Frame().PC != 0
}

func (o Overrun) String() string {
	msg := fmt.Sprintf("overrun: %s took %v (threshold %v)", o.Metric, o.Duration, o.Threshold)
	if o.Group != "" {
		msg = fmt.Sprintf("%s [%s]", msg, o.Group)
	}
	if o.HasLocation() {
		msg = fmt.Sprintf("%s at %v in %n", msg, o.Location, o.Location)
	}
	return msg
}

// Warner receives overrun events.
type Warner interface {
	Overrun(o Overrun)
}

// WarnerFunc adapts a function to the Warner interface.
type WarnerFunc func(o Overrun)

// Overrun calls f(o).
func (f WarnerFunc) Overrun(o Overrun) { f(o) }

// DiscardWarner drops every event.
var DiscardWarner Warner = WarnerFunc(func(Overrun) {})

type writerWarner struct {
	mu   sync.Mutex
	w    io.Writer
	icon *color.Color
}

// NewWriterWarner returns a Warner that prints one line per overrun to w.
func NewWriterWarner(w io.Writer, noColor bool) Warner {
	icon := color.New(color.FgYellow, color.Bold)
	if noColor {
		icon.DisableColor()
	}
	return &writerWarner{w: w, icon: icon}
}

var (
	stderrOnce   sync.Once
	stderrWarner Warner
)

// StderrWarner returns the shared Warner writing to standard error. Colour
// follows fatih/color's terminal detection.
func StderrWarner() Warner {
	stderrOnce.Do(func() {
		stderrWarner = NewWriterWarner(os.Stderr, color.NoColor)
	})
	return stderrWarner
}

func (ww *writerWarner) Overrun(o Overrun) {
	ww.mu.Lock()
	defer ww.mu.Unlock()
	fmt.Fprintf(ww.w, "%s %s\n", ww.icon.Sprint("⚠"), o.String())
}
