package ui

import (
	"sync"

	"golang.org/x/net/html"
)

// ShowClass marks an open menu panel.
const ShowClass = "show"

// Menu opens and closes a panel inside a container element. While mounted,
// a click on the trigger toggles the panel and a click anywhere outside the
// container closes it. Missing elements make every operation a no-op.
type Menu struct {
	container string
	panel     string
	trigger   string

	mu     sync.Mutex
	doc    *Document
	remove func()
}

// NewNavMenu returns the hamburger navigation controller: the container is
// the nav element, the panel #nav-menu and the trigger .menu-toggle.
func NewNavMenu() *Menu {
	return &Menu{container: "nav", panel: "#nav-menu", trigger: ".menu-toggle"}
}

// NewAdminMenu returns the admin dropdown controller: the container is
// .dropdown, the panel .dropdown-content and the trigger .dropdown-toggle.
// The dropdown is only rendered for administrators.
func NewAdminMenu() *Menu {
	return &Menu{container: ".dropdown", panel: ".dropdown-content", trigger: ".dropdown-toggle"}
}

// Mount attaches the menu to doc. Mounting again first unmounts.
func (m *Menu) Mount(doc *Document) {
	m.Unmount()

	remove := doc.AddClickListener(m.handleClick)

	m.mu.Lock()
	m.doc = doc
	m.remove = remove
	m.mu.Unlock()
}

// Unmount removes the document click subscription.
func (m *Menu) Unmount() {
	m.mu.Lock()
	remove := m.remove
	m.doc, m.remove = nil, nil
	m.mu.Unlock()

	if remove != nil {
		remove()
	}
}

// Toggle flips the panel's open state.
func (m *Menu) Toggle() {
	if panel := m.element(m.panel); panel != nil {
		ToggleClass(panel, ShowClass)
	}
}

// Close removes the open state.
func (m *Menu) Close() {
	if panel := m.element(m.panel); panel != nil {
		RemoveClass(panel, ShowClass)
	}
}

// IsOpen reports whether the panel is shown.
func (m *Menu) IsOpen() bool {
	return HasClass(m.element(m.panel), ShowClass)
}

func (m *Menu) handleClick(target *html.Node) {
	container := m.element(m.container)
	if container == nil || m.element(m.panel) == nil {
		return
	}
	if trigger := m.element(m.trigger); trigger != nil && Contains(trigger, target) {
		m.Toggle()
		return
	}
	if !Contains(container, target) {
		m.Close()
	}
}

func (m *Menu) element(selector string) *html.Node {
	m.mu.Lock()
	doc := m.doc
	m.mu.Unlock()
	if doc == nil {
		return nil
	}
	return doc.QuerySelector(selector)
}
