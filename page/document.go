// Package page models the widget page that the rest of the module writes to.
package page

import (
	"sync"

	"weather-widget/models"
)

// Element IDs used by the widget
const (
	InputErrorID  = "error-message"
	HTTPBannerID  = "http-error-message"
	SearchInputID = "location-search-input"
)

// Document is the set of page operations the widget needs
type Document interface {
	// SetText replaces the visible text of an element or display slot
	SetText(id, value string)

	// SetVisible shows or hides an element
	SetVisible(id string, visible bool)

	// SetOpacity sets an element's opacity in [0,1]
	SetOpacity(id string, opacity float64)

	// SetThemeClass sets the page-level theme marker
	SetThemeClass(class string)

	// SetIcon points the page icon at href, creating the reference if absent
	SetIcon(href string)

	// SlotContainers returns the IDs of containers holding a display slot
	SlotContainers() []string
}

// Snapshot is a point-in-time copy of a Memory document
type Snapshot struct {
	Texts      map[string]string  `json:"texts"`
	Visible    map[string]bool    `json:"visible"`
	Opacity    map[string]float64 `json:"opacity"`
	ThemeClass string             `json:"themeClass"`
	Icon       string             `json:"icon"`
	HasIcon    bool               `json:"hasIcon"`
	Slots      []string           `json:"slots"`
}

// Text returns the text of an element
func (s Snapshot) Text(id string) string {
	return s.Texts[id]
}

// IsVisible reports whether an element is shown
func (s Snapshot) IsVisible(id string) bool {
	return s.Visible[id]
}

// Memory is an in-memory Document safe for concurrent use
type Memory struct {
	mu      sync.RWMutex
	texts   map[string]string
	visible map[string]bool
	opacity map[string]float64
	theme   string
	icon    string
	hasIcon bool
	slots   []string
}

var _ Document = (*Memory)(nil)

// NewMemory creates a document with one display slot per container ID.
// Both error elements start hidden.
func NewMemory(slots ...string) *Memory {
	m := &Memory{
		texts:   make(map[string]string),
		visible: map[string]bool{InputErrorID: false, HTTPBannerID: false},
		opacity: map[string]float64{HTTPBannerID: 1},
		slots:   append([]string(nil), slots...),
	}
	for _, id := range m.slots {
		m.texts[id] = "-"
	}
	return m
}

// NewWidget creates a document laid out like the widget page, with a slot
// container for every weather record field
func NewWidget() *Memory {
	return NewMemory(models.FieldNames...)
}

func (m *Memory) SetText(id, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts[id] = value
}

func (m *Memory) SetVisible(id string, visible bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible[id] = visible
	if visible {
		// Shown elements start fully opaque
		m.opacity[id] = 1
	}
}

func (m *Memory) SetOpacity(id string, opacity float64) {
	switch {
	case opacity < 0:
		opacity = 0
	case opacity > 1:
		opacity = 1
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opacity[id] = opacity
}

func (m *Memory) SetThemeClass(class string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = class
}

func (m *Memory) SetIcon(href string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hasIcon = true
	m.icon = href
}

func (m *Memory) SlotContainers() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.slots...)
}

// Snapshot copies the current document state
func (m *Memory) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Snapshot{
		Texts:      make(map[string]string, len(m.texts)),
		Visible:    make(map[string]bool, len(m.visible)),
		Opacity:    make(map[string]float64, len(m.opacity)),
		ThemeClass: m.theme,
		Icon:       m.icon,
		HasIcon:    m.hasIcon,
		Slots:      append([]string(nil), m.slots...),
	}
	for k, v := range m.texts {
		s.Texts[k] = v
	}
	for k, v := range m.visible {
		s.Visible[k] = v
	}
	for k, v := range m.opacity {
		s.Opacity[k] = v
	}
	return s
}
