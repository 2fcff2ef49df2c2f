package browser

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

// Session represents an active browser session with its associated
// resources. It is the concrete executor the binding layer ships scripts
// through.
type Session struct {
	// Name is the unique identifier for this session
	Name string

	// Browser is the Playwright browser instance
	Browser playwright.Browser

	// Context is the browser context (isolated session)
	Context playwright.BrowserContext

	// Page is the current active page
	Page playwright.Page

	// Headless indicates if the browser is running in headless mode
	Headless bool

	// CreatedAt is the timestamp when the session was created
	CreatedAt time.Time

	// LastUsedAt is the timestamp of the last operation on this session
	LastUsedAt time.Time

	// CurrentURL is the URL of the current page
	CurrentURL string
}

// SessionOptions configures a new browser session. Zero fields fall back
// to the manager's configuration.
type SessionOptions struct {
	// Headless controls whether the browser runs without a visible window
	Headless *bool

	// Viewport sets the initial viewport size
	Viewport *Viewport

	// Timeout sets the default timeout for page operations (milliseconds)
	Timeout float64
}

// Viewport represents the browser viewport dimensions.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// NavigateOptions configures page navigation behavior.
type NavigateOptions struct {
	// WaitUntil specifies when to consider navigation successful.
	// Valid values: "load", "domcontentloaded", "networkidle"
	WaitUntil string

	// Timeout in milliseconds (0 means default)
	Timeout float64
}

// SessionInfo contains metadata about a browser session.
type SessionInfo struct {
	Name       string
	CurrentURL string
	Headless   bool
	CreatedAt  time.Time
	LastUsedAt time.Time
}

// Default values for sessions and previews.
const (
	DefaultTimeout        = 30000.0 // milliseconds
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
	DefaultMaxSessions    = 5
	DefaultIdleTimeout    = 5 * time.Minute
	DefaultPreviewLength  = 2000 // characters of cleaned outerHTML
)
