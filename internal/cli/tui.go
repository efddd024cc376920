package cli

import (
	"fmt"
	"hash/fnv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lwertel/gridpack/pkg/catalog"
	"github.com/lwertel/gridpack/pkg/grid"
	"github.com/lwertel/gridpack/pkg/store"
)

// Cell palette cycled across widgets in the editor view.
var cellColors = []lipgloss.Color{
	lipgloss.Color("36"), lipgloss.Color("35"), lipgloss.Color("220"),
	lipgloss.Color("75"), lipgloss.Color("167"), lipgloss.Color("134"),
	lipgloss.Color("208"), lipgloss.Color("114"),
}

var (
	editorFreeStyle     = lipgloss.NewStyle().Foreground(colorDim)
	editorSelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	editorStatusStyle   = lipgloss.NewStyle().Foreground(colorGray)
	editorErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// editorModel is the bubbletea model for the interactive layout editor.
// All edits run through the same engine operations the API uses; the
// working copy is only written back to the store on save.
type editorModel struct {
	doc     *store.Document
	cat     *catalog.Catalog
	types   []string
	typeIdx int
	cursor  int
	status  string
	failed  bool
	dirty   bool
	save    bool
}

func newEditorModel(doc *store.Document, cat *catalog.Catalog) editorModel {
	return editorModel{
		doc:    doc,
		cat:    cat,
		types:  cat.Types(),
		status: "ready",
	}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "s":
			m.save = true
			return m, tea.Quit

		case "tab", "n":
			if len(m.doc.Layout) > 0 {
				m.cursor = (m.cursor + 1) % len(m.doc.Layout)
			}

		case "shift+tab", "p":
			if len(m.doc.Layout) > 0 {
				m.cursor = (m.cursor - 1 + len(m.doc.Layout)) % len(m.doc.Layout)
			}

		case "up", "k":
			m = m.moveSelected(0, -1)
		case "down", "j":
			m = m.moveSelected(0, 1)
		case "left", "h":
			m = m.moveSelected(-1, 0)
		case "right", "l":
			m = m.moveSelected(1, 0)

		case "t":
			m.typeIdx = (m.typeIdx + 1) % len(m.types)
			m = m.setStatus(fmt.Sprintf("widget type: %s", m.types[m.typeIdx]))

		case "a":
			m = m.addWidget()

		case "r":
			m = m.repack()
		}
	}
	return m, nil
}

// moveSelected shifts the selected widget one cell, displacing whatever
// it lands on.
func (m editorModel) moveSelected(dx, dy int) editorModel {
	if m.cursor >= len(m.doc.Layout) {
		return m
	}
	r := m.doc.Layout[m.cursor]
	res, err := grid.GroupSwap(m.doc.Layout, m.doc.Bounds, r.ID, r.X+dx, r.Y+dy)
	if err != nil {
		return m.setError(fmt.Sprintf("cannot move %s: %v", r.ID, err))
	}
	m.doc.Layout = res.Layout
	m.cursor = indexOf(m.doc.Layout, r.ID)
	m.dirty = true
	if len(res.Displaced) > 0 {
		return m.setStatus(fmt.Sprintf("moved %s, displaced %v", r.ID, res.Displaced))
	}
	return m.setStatus(fmt.Sprintf("moved %s", r.ID))
}

func (m editorModel) addWidget() editorModel {
	typ := m.types[m.typeIdx]
	rect, err := m.cat.Instantiate(typ)
	if err != nil {
		return m.setError(err.Error())
	}
	mins := m.doc.MinSizes
	if mins == nil {
		mins = m.cat.MinSizesFor(m.doc.Layout)
	}
	res, err := grid.AutoAdjust(m.doc.Layout, m.doc.Bounds, rect.W, rect.H, mins)
	if err != nil {
		return m.setError(fmt.Sprintf("no room for %s: %v", typ, err))
	}
	m.doc.Layout = append(res.Layout, rect.MoveTo(res.Pos.X, res.Pos.Y))
	m.cursor = len(m.doc.Layout) - 1
	m.dirty = true
	if len(res.Shrunk) > 0 {
		return m.setStatus(fmt.Sprintf("added %s, shrunk %v", rect.ID, res.Shrunk))
	}
	return m.setStatus(fmt.Sprintf("added %s at (%d,%d)", rect.ID, res.Pos.X, res.Pos.Y))
}

func (m editorModel) repack() editorModel {
	var selected string
	if m.cursor < len(m.doc.Layout) {
		selected = m.doc.Layout[m.cursor].ID
	}
	packed, err := grid.Repack(m.doc.Layout, m.doc.Bounds)
	if err != nil {
		return m.setError(fmt.Sprintf("repack: %v", err))
	}
	m.doc.Layout = packed
	m.cursor = max(indexOf(m.doc.Layout, selected), 0)
	m.dirty = true
	return m.setStatus(fmt.Sprintf("repacked to %d rows", packed.MaxY()))
}

func (m editorModel) setStatus(s string) editorModel {
	m.status, m.failed = s, false
	return m
}

func (m editorModel) setError(s string) editorModel {
	m.status, m.failed = s, true
	return m
}

func indexOf(l grid.Layout, id string) int {
	for i, r := range l {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (m editorModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s  %dx%d", m.doc.Name, m.doc.Bounds.Cols, m.doc.Bounds.MaxRows)
	if m.dirty {
		title += " *"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("tab select  ←↓↑→ move  a add  t type  r repack  s save  q quit"))
	b.WriteString("\n\n")

	var selectedID string
	if m.cursor < len(m.doc.Layout) {
		selectedID = m.doc.Layout[m.cursor].ID
	}

	rows := max(m.doc.Layout.MaxY(), 1)
	for y := 0; y < rows; y++ {
		for x := 0; x < m.doc.Bounds.Cols; x++ {
			b.WriteString(cellView(m.doc.Layout, x, y, selectedID))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.cursor < len(m.doc.Layout) {
		r := m.doc.Layout[m.cursor]
		b.WriteString(StyleValue.Render(fmt.Sprintf("%s  (%d,%d) %dx%d", r.ID, r.X, r.Y, r.W, r.H)))
		b.WriteString("\n")
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf("next widget: %s", m.types[m.typeIdx])))
	b.WriteString("\n")
	if m.failed {
		b.WriteString(editorErrorStyle.Render(iconError + " " + m.status))
	} else {
		b.WriteString(editorStatusStyle.Render(m.status))
	}
	b.WriteString("\n")
	return b.String()
}

// cellView renders one grid cell as a two-character block.
func cellView(l grid.Layout, x, y int, selectedID string) string {
	for _, r := range l {
		if !r.Contains(x, y) {
			continue
		}
		style := lipgloss.NewStyle().Foreground(colorForID(r.ID))
		if r.ID == selectedID {
			style = editorSelectedStyle.Foreground(colorForID(r.ID))
		}
		return style.Render("██")
	}
	return editorFreeStyle.Render("··")
}

// colorForID picks a stable palette color for a widget ID.
func colorForID(id string) lipgloss.Color {
	h := fnv.New32a()
	h.Write([]byte(id))
	return cellColors[h.Sum32()%uint32(len(cellColors))]
}

// newTUICmd creates the tui command.
func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui <layout-name>",
		Short: "Edit a stored layout interactively",
		Long: `Tui opens a stored layout in a terminal editor. Widgets can be moved
cell by cell (displacing neighbors), new widgets inserted with
auto-adjust, and the whole layout repacked. Changes are written back to
the store only on save.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cat, err := flags.loadCatalog()
			if err != nil {
				return err
			}
			st, err := store.Open(ctx, flags.storeAddr)
			if err != nil {
				return err
			}
			defer st.Close()

			doc, err := st.Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("load layout %s: %w", args[0], err)
			}

			p := tea.NewProgram(newEditorModel(doc, cat))
			out, err := p.Run()
			if err != nil {
				return err
			}

			final, ok := out.(editorModel)
			if !ok || !final.save {
				if final.dirty {
					printWarning("Discarded unsaved changes")
				}
				return nil
			}
			if err := st.Put(ctx, final.doc); err != nil {
				return fmt.Errorf("save layout %s: %w", args[0], err)
			}
			printSuccess("Saved %s (version %d)", final.doc.Name, final.doc.Version)
			return nil
		},
	}
}
