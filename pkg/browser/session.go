package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// UpdateLastUsed updates the LastUsedAt timestamp to the current time.
func (s *Session) UpdateLastUsed() {
	s.LastUsedAt = time.Now()
}

// ExecuteScript implements jsbind.Executor. The script is a selenium-style
// function body addressing positional arguments; it is framed as an IIFE
// applied to a spread argument array, since Playwright's Evaluate accepts a
// single argument.
//
// Playwright element handles passed as args travel as live handles, not
// serialized copies. The call blocks for the duration of the round trip; a
// context already cancelled fails before shipping anything.
func (s *Session) ExecuteScript(ctx context.Context, script string, args ...any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.UpdateLastUsed()

	expression := fmt.Sprintf("args => (function() { %s }).apply(null, args)", script)

	list := make([]any, len(args))
	copy(list, args)

	result, err := s.Page.Evaluate(expression, list)
	if err != nil {
		return nil, fmt.Errorf("script execution failed: %w", err)
	}
	return result, nil
}

// IsElement implements jq.ElementIdentifier: Playwright element and JS
// handles classify as elements.
func (s *Session) IsElement(v any) bool {
	switch v.(type) {
	case playwright.ElementHandle, playwright.JSHandle:
		return true
	default:
		return false
	}
}

// Navigate navigates the session's page to the specified URL.
func (s *Session) Navigate(url string, opts NavigateOptions) error {
	s.UpdateLastUsed()

	playwrightOpts := playwright.PageGotoOptions{}
	if opts.WaitUntil != "" {
		waitUntil := playwright.WaitUntilState(opts.WaitUntil)
		playwrightOpts.WaitUntil = &waitUntil
	}
	if opts.Timeout > 0 {
		playwrightOpts.Timeout = &opts.Timeout
	}

	if _, err := s.Page.Goto(url, playwrightOpts); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}

	s.CurrentURL = s.Page.URL()
	return nil
}

// QuerySelector returns a live handle for the first element matching the
// selector, or nil when nothing matches. The handle can be fed back through
// jsbind.Wrap or jq.NewElement.
func (s *Session) QuerySelector(selector string) (playwright.ElementHandle, error) {
	s.UpdateLastUsed()

	handle, err := s.Page.QuerySelector(selector)
	if err != nil {
		return nil, fmt.Errorf("selector query failed: %w", err)
	}
	return handle, nil
}

// Screenshot captures the current page as PNG bytes.
func (s *Session) Screenshot() ([]byte, error) {
	s.UpdateLastUsed()

	data, err := s.Page.Screenshot()
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}
	return data, nil
}

// ElementScreenshot captures a single element as PNG bytes.
func (s *Session) ElementScreenshot(handle playwright.ElementHandle) ([]byte, error) {
	s.UpdateLastUsed()

	data, err := handle.Screenshot()
	if err != nil {
		return nil, fmt.Errorf("element screenshot failed: %w", err)
	}
	return data, nil
}

// SaveElementScreenshot captures a single element and writes the PNG to
// path.
func (s *Session) SaveElementScreenshot(handle playwright.ElementHandle, path string) error {
	s.UpdateLastUsed()

	opts := playwright.ElementHandleScreenshotOptions{
		Path: playwright.String(path),
	}
	if _, err := handle.Screenshot(opts); err != nil {
		return fmt.Errorf("element screenshot failed: %w", err)
	}
	return nil
}

// ElementPreview returns a cleaned, truncated rendering of an element's
// outerHTML, suitable for terminal display. maxLength <= 0 applies
// DefaultPreviewLength.
func (s *Session) ElementPreview(ctx context.Context, handle playwright.ElementHandle, maxLength int) (string, error) {
	raw, err := s.ExecuteScript(ctx, "return arguments[0].outerHTML", handle)
	if err != nil {
		return "", err
	}
	outer, _ := raw.(string)
	return previewHTML(outer, maxLength)
}
