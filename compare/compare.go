package compare

import (
	"sync"

	"dealaxe/models"
)

// MaxCompare is the most products that can be selected for comparison at once.
const MaxCompare = 3

// Manager holds one session's comparison set. Removal is soft (entries are
// unselected, not deleted) and every mutation ends with a compaction pass, so
// callers never observe lingering unselected entries. The mutex exists only
// because the HTTP server is concurrent; the state machine itself is
// single-owner per session.
type Manager struct {
	mu   sync.Mutex
	list []models.SelectedProduct
	open bool
}

func NewManager() *Manager {
	return &Manager{}
}

// Add appends the product as selected. Once MaxCompare products are already
// selected, the first selected entry in list order is evicted first (FIFO
// over a max-3 window).
func (m *Manager) Add(p models.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.selectedCount() >= MaxCompare {
		for i := range m.list {
			if m.list[i].Selected {
				m.list[i].Selected = false
				break
			}
		}
	}
	m.list = append(m.list, models.SelectedProduct{Product: p, Selected: true})
	m.compact()
}

// Remove unselects every entry with the given product id.
func (m *Manager) Remove(productID int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.list {
		if m.list[i].ID == productID {
			m.list[i].Selected = false
		}
	}
	m.compact()
}

func (m *Manager) IsSelected(productID int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, sp := range m.list {
		if sp.ID == productID && sp.Selected {
			return true
		}
	}
	return false
}

// Selected returns a copy of the currently selected entries in list order.
func (m *Manager) Selected() []models.SelectedProduct {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.SelectedProduct, 0, len(m.list))
	for _, sp := range m.list {
		if sp.Selected {
			out = append(out, sp)
		}
	}
	return out
}

// Clear drops the whole set and closes the comparison view.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.list = nil
	m.open = false
}

// OpenCompare transitions to the open state only when at least two products
// are selected; otherwise it is a no-op. Returns whether the view is open.
func (m *Manager) OpenCompare() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.selectedCount() >= 2 {
		m.open = true
	}
	return m.open
}

func (m *Manager) CloseCompare() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.open = false
}

func (m *Manager) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.open
}

// selectedCount and compact run under the caller's lock.
func (m *Manager) selectedCount() int {
	n := 0
	for _, sp := range m.list {
		if sp.Selected {
			n++
		}
	}
	return n
}

// compact prunes unselected entries; an empty selection clears the backing
// list entirely.
func (m *Manager) compact() {
	selected := m.list[:0:0]
	for _, sp := range m.list {
		if sp.Selected {
			selected = append(selected, sp)
		}
	}
	if len(selected) == 0 {
		m.list = nil
		return
	}
	if len(selected) != len(m.list) {
		m.list = selected
	}
}
