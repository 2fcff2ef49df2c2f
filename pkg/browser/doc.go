// Package browser is the Playwright-backed driver for jsbind.
//
// A Session bundles a Playwright browser, context, and page, and implements
// jsbind.Executor: scripts generated by the binding layer are selenium-style
// function bodies addressing positional arguments, and the session frames
// them for Playwright's single-argument Evaluate by applying an IIFE to a
// spread argument array. The session also implements jq.ElementIdentifier,
// so query results containing Playwright element handles classify into
// jq elements.
//
// A SessionManager owns the Playwright runtime and a registry of named
// sessions, with limits on session count and idle lifetime. Configuration
// is yaml-encoded; see Config and LoadConfig.
//
//	manager := browser.NewSessionManager(cfg)
//	if err := manager.Initialize(); err != nil { ... }
//	defer manager.Shutdown()
//
//	session, err := manager.StartSession("research", browser.SessionOptions{})
//	err = session.Navigate("https://example.com", browser.NavigateOptions{})
//
//	doc, err := jsbind.Global(session, "document")
//	title, err := doc.Get(ctx, "title")
package browser
