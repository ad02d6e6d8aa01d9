package compare

import (
	"testing"

	"dealaxe/models"
)

func prod(id int) models.Product {
	return models.Product{
		ID:   id,
		Name: "product",
		Platforms: []models.Platform{
			{ID: "store", Price: 100},
		},
	}
}

func TestAddBoundedAtThree(t *testing.T) {
	m := NewManager()
	for id := 1; id <= 4; id++ {
		m.Add(prod(id))
	}

	sel := m.Selected()
	if len(sel) != 3 {
		t.Fatalf("selected count = %d, want 3", len(sel))
	}
	if m.IsSelected(1) {
		t.Error("first-added product should have been evicted")
	}
	for _, id := range []int{2, 3, 4} {
		if !m.IsSelected(id) {
			t.Errorf("product %d should still be selected", id)
		}
	}
}

func TestAddEvictsFIFO(t *testing.T) {
	m := NewManager()
	for id := 1; id <= 6; id++ {
		m.Add(prod(id))
	}

	sel := m.Selected()
	want := []int{4, 5, 6}
	if len(sel) != len(want) {
		t.Fatalf("selected count = %d, want %d", len(sel), len(want))
	}
	for i, sp := range sel {
		if sp.ID != want[i] {
			t.Errorf("selected[%d].ID = %d, want %d", i, sp.ID, want[i])
		}
	}
}

func TestRemoveCompacts(t *testing.T) {
	m := NewManager()
	m.Add(prod(1))
	m.Add(prod(2))

	m.Remove(1)
	if m.IsSelected(1) {
		t.Error("removed product still selected")
	}
	if sel := m.Selected(); len(sel) != 1 || sel[0].ID != 2 {
		t.Fatalf("selected = %+v, want just product 2", sel)
	}

	m.Remove(2)
	if sel := m.Selected(); len(sel) != 0 {
		t.Fatalf("selected = %+v, want empty", sel)
	}
}

func TestOpenCompareNeedsTwo(t *testing.T) {
	m := NewManager()
	m.Add(prod(1))
	if m.OpenCompare() {
		t.Error("compare opened with a single product")
	}

	m.Add(prod(2))
	if !m.OpenCompare() {
		t.Error("compare did not open with two products")
	}

	m.CloseCompare()
	if m.IsOpen() {
		t.Error("compare still open after close")
	}
}

func TestClear(t *testing.T) {
	m := NewManager()
	m.Add(prod(1))
	m.Add(prod(2))
	m.OpenCompare()

	m.Clear()
	if len(m.Selected()) != 0 || m.IsOpen() {
		t.Error("clear did not reset the set")
	}
}

func TestRegistryIsPerSession(t *testing.T) {
	r := NewRegistry()
	r.Manager("s1").Add(prod(1))

	if r.Manager("s2").IsSelected(1) {
		t.Error("sessions share a comparison set")
	}
	if m := r.Manager("s1"); !m.IsSelected(1) {
		t.Error("registry did not return the same manager for a session")
	}
}
