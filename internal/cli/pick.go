package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mlandau/wavetrace/pkg/diagram"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// pickCommand creates the pick command for interactively choosing a
// source file from a directory and rendering it.
func (c *CLI) pickCommand() *cobra.Command {
	opts := renderOpts{
		skin:    c.Config.Skin,
		strict:  c.Config.Strict,
		noCache: c.Config.NoCache,
	}

	cmd := &cobra.Command{
		Use:   "pick [dir]",
		Short: "Interactively choose a source file and render it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return c.runPick(cmd, dir, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.skin, "skin", opts.skin, "skin for timing diagrams: default, narrow, dark, lowkey")
	cmd.Flags().BoolVar(&opts.strict, "strict", opts.strict, "reference dialect only, no rendering extensions")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", opts.noCache, "disable caching")

	return cmd
}

func (c *CLI) runPick(cmd *cobra.Command, dir string, opts *renderOpts) error {
	entries, err := scanSources(dir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		printWarning("No .json documents under %s", dir)
		return nil
	}

	model := newSourceListModel(entries)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("interactive selection: %w", err)
	}

	m, ok := final.(sourceListModel)
	if !ok || m.Selected == nil {
		printInfo("Nothing selected")
		return nil
	}
	return c.runRender(cmd.Context(), m.Selected.Path, opts)
}

// sourceEntry is one candidate file in the picker.
type sourceEntry struct {
	Path string
	Name string
	Kind string // "signal", "reg", "assign" or "" when undecodable
}

// scanSources lists the .json files directly under dir and probes each
// for a recognized document kind. Files that do not decode stay listed
// but cannot be selected.
func scanSources(dir string) ([]sourceEntry, error) {
	names, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	entries := make([]sourceEntry, 0, len(names))
	for _, path := range names {
		e := sourceEntry{Path: path, Name: filepath.Base(path)}
		if data, err := os.ReadFile(path); err == nil {
			if doc, err := diagram.Decode(data); err == nil {
				e.Kind = doc.Kind().String()
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// renderable reports whether the entry selects a pipeline that can
// produce SVG.
func (e sourceEntry) renderable() bool {
	return e.Kind == "signal" || e.Kind == "reg"
}

// sourceListModel is the bubbletea model for interactive source selection.
type sourceListModel struct {
	Entries  []sourceEntry
	Cursor   int
	Selected *sourceEntry
	Height   int
	Offset   int
}

func newSourceListModel(entries []sourceEntry) sourceListModel {
	return sourceListModel{
		Entries: entries,
		Height:  15,
	}
}

func (m sourceListModel) Init() tea.Cmd {
	return nil
}

func (m sourceListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			entry := m.Entries[m.Cursor]
			if !entry.renderable() {
				return m, nil
			}
			m.Selected = &entry
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m sourceListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Document"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ render  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		kind := e.Kind
		if kind == "" {
			kind = "—"
		}

		line := fmt.Sprintf("%s%-30s  %s", cursor, e.Name, listDimStyle.Render(kind))
		switch {
		case i == m.Cursor && e.renderable():
			b.WriteString(listSelectedStyle.Render(line))
		case !e.renderable():
			b.WriteString(listDimStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}
