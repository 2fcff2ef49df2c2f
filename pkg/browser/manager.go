package browser

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	"github.com/junk-io/jsbind/pkg/logging"
)

// SessionManager owns the Playwright runtime and a registry of named
// browser sessions.
type SessionManager struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	playwright  *playwright.Playwright
	cfg         Config
	log         *logging.Logger
	initialized bool
}

// NewSessionManager creates a session manager with the given configuration.
func NewSessionManager(cfg Config) *SessionManager {
	log, _ := logging.NewLogger("browser") // fallback logger on error
	return &SessionManager{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		log:      log,
	}
}

// Initialize installs and starts the Playwright runtime. It must be called
// before creating any sessions.
func (m *SessionManager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	// Discard driver output so it cannot interleave with terminal UIs.
	opts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if err := playwright.Install(opts); err != nil {
		return fmt.Errorf("failed to install playwright: %w", err)
	}

	pw, err := playwright.Run(opts)
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}

	m.playwright = pw
	m.initialized = true
	m.log.Infof("playwright runtime started")
	return nil
}

// StartSession creates a new browser session. An empty name is replaced by
// a generated one.
func (m *SessionManager) StartSession(name string, opts SessionOptions) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if name == "" {
		name = uuid.New().String()
	}

	if _, exists := m.sessions[name]; exists {
		return nil, fmt.Errorf("session %q already exists", name)
	}

	if len(m.sessions) >= m.cfg.MaxSessions {
		return nil, fmt.Errorf("maximum number of sessions (%d) reached", m.cfg.MaxSessions)
	}

	if !m.initialized {
		return nil, fmt.Errorf("session manager not initialized")
	}

	headless := m.cfg.Headless
	if opts.Headless != nil {
		headless = *opts.Headless
	}
	viewport := m.cfg.Viewport
	if opts.Viewport != nil {
		viewport = *opts.Viewport
	}
	timeout := m.cfg.TimeoutMS
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: &headless,
	}
	b, err := m.playwright.Chromium.Launch(launchOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	contextOpts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  viewport.Width,
			Height: viewport.Height,
		},
	}
	browserCtx, err := b.NewContext(contextOpts)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		browserCtx.Close()
		b.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	page.SetDefaultTimeout(timeout)

	now := time.Now()
	session := &Session{
		Name:       name,
		Browser:    b,
		Context:    browserCtx,
		Page:       page,
		Headless:   headless,
		CreatedAt:  now,
		LastUsedAt: now,
		CurrentURL: "about:blank",
	}

	m.sessions[name] = session
	m.log.Infof("session %q started (headless=%v)", name, headless)
	return session, nil
}

// GetSession retrieves an active session by name.
func (m *SessionManager) GetSession(name string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[name]
	if !exists {
		return nil, fmt.Errorf("session %q not found", name)
	}
	return session, nil
}

// CloseSession closes and removes a browser session.
func (m *SessionManager) CloseSession(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[name]
	if !exists {
		return fmt.Errorf("session %q not found", name)
	}

	m.closeSession(session)
	delete(m.sessions, name)
	m.log.Infof("session %q closed", name)
	return nil
}

// ListSessions returns metadata for every active session.
func (m *SessionManager) ListSessions() []SessionInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	infos := make([]SessionInfo, 0, len(m.sessions))
	for _, session := range m.sessions {
		infos = append(infos, SessionInfo{
			Name:       session.Name,
			CurrentURL: session.CurrentURL,
			Headless:   session.Headless,
			CreatedAt:  session.CreatedAt,
			LastUsedAt: session.LastUsedAt,
		})
	}
	return infos
}

// HasSessions reports whether any session is active.
func (m *SessionManager) HasSessions() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions) > 0
}

// CloseAll closes every active session, keeping the runtime up.
func (m *SessionManager) CloseAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name, session := range m.sessions {
		m.closeSession(session)
		delete(m.sessions, name)
	}
	return nil
}

// CleanupIdleSessions closes sessions idle for longer than the configured
// timeout and returns their names.
func (m *SessionManager) CleanupIdleSessions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	var closed []string
	for name, session := range m.sessions {
		if now.Sub(session.LastUsedAt) > m.cfg.IdleTimeout {
			m.closeSession(session)
			delete(m.sessions, name)
			closed = append(closed, name)
			m.log.Infof("session %q closed after idle timeout", name)
		}
	}
	return closed
}

// Shutdown closes all sessions and stops the Playwright runtime.
func (m *SessionManager) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name, session := range m.sessions {
		m.closeSession(session)
		delete(m.sessions, name)
	}

	if m.initialized && m.playwright != nil {
		if err := m.playwright.Stop(); err != nil {
			return fmt.Errorf("failed to stop playwright: %w", err)
		}
		m.initialized = false
	}

	m.log.Infof("playwright runtime stopped")
	return nil
}

// closeSession releases a session's resources; errors are ignored so that
// cleanup always proceeds.
func (m *SessionManager) closeSession(s *Session) {
	_ = s.Page.Close()
	_ = s.Context.Close()
	_ = s.Browser.Close()
}
