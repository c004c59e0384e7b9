package cli

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestScanSources(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("b_reg.json", `{"reg":[{"bits":8}]}`)
	write("a_wave.json", `{"signal":[{"name":"clk","wave":"p..."}]}`)
	write("broken.json", `not json`)
	write("notes.txt", `ignored`)

	entries, err := scanSources(dir)
	if err != nil {
		t.Fatalf("scanSources() error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("scanSources() found %d entries, want 3", len(entries))
	}

	// Sorted by path.
	if entries[0].Name != "a_wave.json" || entries[0].Kind != "signal" {
		t.Errorf("entries[0] = %+v, want a_wave.json/signal", entries[0])
	}
	if entries[1].Name != "b_reg.json" || entries[1].Kind != "reg" {
		t.Errorf("entries[1] = %+v, want b_reg.json/reg", entries[1])
	}
	if entries[2].Name != "broken.json" || entries[2].Kind != "" {
		t.Errorf("entries[2] = %+v, want broken.json with empty kind", entries[2])
	}

	if !entries[0].renderable() || !entries[1].renderable() {
		t.Error("signal and reg entries should be renderable")
	}
	if entries[2].renderable() {
		t.Error("undecodable entry should not be renderable")
	}
}

func TestSourceListModelNavigation(t *testing.T) {
	entries := []sourceEntry{
		{Name: "a.json", Kind: "signal"},
		{Name: "b.json", Kind: ""},
		{Name: "c.json", Kind: "reg"},
	}
	m := newSourceListModel(entries)

	press := func(m sourceListModel, key string) sourceListModel {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		return next.(sourceListModel)
	}

	m = press(m, "j")
	if m.Cursor != 1 {
		t.Errorf("after one down Cursor = %d, want 1", m.Cursor)
	}

	// Selecting an undecodable entry is a no-op.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(sourceListModel)
	if m.Selected != nil {
		t.Error("selecting an undecodable entry should not set Selected")
	}

	m = press(m, "j")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(sourceListModel)
	if m.Selected == nil || m.Selected.Name != "c.json" {
		t.Errorf("Selected = %+v, want c.json", m.Selected)
	}
}
