package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultRecycleAfter is the number of pages rendered before the browser
// is restarted. Chrome's memory baseline grows with every page.
const DefaultRecycleAfter = 75

// browserManager owns the headless browser and restarts it every
// recycleAfter pages.
type browserManager struct {
	mu           sync.Mutex
	browser      *rod.Browser
	launcher     *launcher.Launcher
	pages        int
	recycleAfter int
	closed       bool
}

func newBrowserManager(recycleAfter int) (*browserManager, error) {
	if recycleAfter <= 0 {
		recycleAfter = DefaultRecycleAfter
	}
	bm := &browserManager{recycleAfter: recycleAfter}
	if err := bm.launch(); err != nil {
		return nil, err
	}
	return bm, nil
}

// acquire returns the browser for one page, restarting it first when the
// recycle threshold is reached.
func (bm *browserManager) acquire() (*rod.Browser, error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil, fmt.Errorf("browser closed")
	}
	if bm.pages >= bm.recycleAfter {
		bm.recycle()
	}
	bm.pages++
	return bm.browser, nil
}

func (bm *browserManager) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	bm.browser = browser
	bm.launcher = l
	return nil
}

// recycle replaces the browser. The old one is kept if a new one cannot
// be started. Must be called with mu held.
func (bm *browserManager) recycle() {
	oldBrowser, oldLauncher := bm.browser, bm.launcher
	if err := bm.launch(); err != nil {
		bm.browser, bm.launcher = oldBrowser, oldLauncher
		return
	}
	_ = oldBrowser.Close()
	oldLauncher.Kill()
	bm.pages = 0
}

func (bm *browserManager) close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true

	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
	}
	return err
}
