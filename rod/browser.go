package rod

import (
	"fmt"
	"sync"

	"github.com/fwojciec/newsdesk"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultRecycleAfter is the default number of pages a browser serves
// before it is replaced.
const DefaultRecycleAfter = 50

// Browser owns a headless Chrome process and replaces it after a fixed
// number of pages. Long-running servers otherwise see Chrome memory grow
// without bound. A replaced process stays alive until every page acquired
// from it has been released. Browser is safe for concurrent use.
type Browser struct {
	mu           sync.Mutex
	current      *instance
	retired      map[*instance]struct{}
	served       int
	recycleAfter int
	closed       bool
}

// instance is one Chrome process and the number of pages open on it.
type instance struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	inUse    int
	done     bool
}

func (in *instance) shutdown() error {
	if in.done {
		return nil
	}
	in.done = true
	err := in.browser.Close()
	in.launcher.Kill()
	return err
}

// BrowserOption configures a Browser.
type BrowserOption func(*Browser)

// WithRecycleAfter sets how many pages a browser serves before being
// replaced.
func WithRecycleAfter(n int) BrowserOption {
	return func(b *Browser) {
		b.recycleAfter = n
	}
}

// NewBrowser launches headless Chrome. Close must be called when the
// Browser is no longer needed.
func NewBrowser(opts ...BrowserOption) (*Browser, error) {
	b := &Browser{
		recycleAfter: DefaultRecycleAfter,
		retired:      make(map[*instance]struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}

	browser, l, err := launch()
	if err != nil {
		return nil, err
	}
	b.current = &instance{browser: browser, launcher: l}
	return b, nil
}

// Acquire returns the browser to use for the next page and counts the page
// against the recycling budget. A replacement is launched first when the
// budget is spent; if that launch fails the current browser keeps serving.
// The returned release func must be called once the page is closed; a
// replaced browser shuts down when its last page is released.
func (b *Browser) Acquire() (*rod.Browser, func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, nil, newsdesk.Errorf(newsdesk.EINTERNAL, "browser is closed")
	}

	if b.served >= b.recycleAfter {
		if browser, l, err := launch(); err == nil {
			old := b.current
			if old.inUse == 0 {
				_ = old.shutdown()
			} else {
				b.retired[old] = struct{}{}
			}
			b.current, b.served = &instance{browser: browser, launcher: l}, 0
		}
	}
	b.served++

	in := b.current
	in.inUse++
	var once sync.Once
	release := func() {
		once.Do(func() { b.release(in) })
	}
	return in.browser, release, nil
}

func (b *Browser) release(in *instance) {
	b.mu.Lock()
	defer b.mu.Unlock()

	in.inUse--
	if _, ok := b.retired[in]; ok && in.inUse == 0 {
		delete(b.retired, in)
		_ = in.shutdown()
	}
}

// PID returns the process ID of the running Chrome launcher.
func (b *Browser) PID() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return 0
	}
	return b.current.launcher.PID()
}

// Close shuts down Chrome, including replaced processes whose pages are
// still open. It is safe to call more than once.
func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	err := b.current.shutdown()
	for in := range b.retired {
		_ = in.shutdown()
		delete(b.retired, in)
	}
	return err
}

// launch starts Chrome with flags that keep background pages responsive
// and connects to it.
func launch() (*rod.Browser, *launcher.Launcher, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return browser, l, nil
}
