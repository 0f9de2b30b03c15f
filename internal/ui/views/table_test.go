package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablegrip/internal/domain"
	"tablegrip/internal/ui/scope"
	"tablegrip/internal/ui/services/disclosure"
	"tablegrip/internal/ui/services/selection"
)

var testLabels = disclosure.Labels{Collapsed: "show details", Expanded: "hide details"}

func selectableScope(t *testing.T, ids ...string) (*scope.Scope, *selection.Service) {
	t.Helper()
	universe := make([]selection.ID, len(ids))
	for i, id := range ids {
		universe[i] = selection.ID(id)
	}
	svc := selection.NewService(universe, func(selection.Selection) {}, nil)
	return scope.New().WithSelection(svc), svc
}

func newDrawer(t *testing.T, row string) *disclosure.Controller {
	t.Helper()
	d, err := disclosure.NewController(row, testLabels, nil)
	require.NoError(t, err)
	return d
}

func sampleTable() *domain.Table {
	return &domain.Table{
		Caption: "Services",
		Columns: []string{"Name", "Owner"},
		Rows: []domain.Row{
			{ID: "GH", Cells: []string{"GitHub", "infra"}, Drawer: "hosted git"},
			{ID: "MH", Cells: []string{"Mailhog", "qa"}},
			{ID: "AR", Cells: []string{"Archive", "ops"}, NotSelectable: true},
		},
	}
}

func TestHeaderRenderer_SelectAllGlyph(t *testing.T) {
	sc, svc := selectableScope(t, "GH", "MH")
	h := NewHeaderRenderer(NewStyles(), sc)
	widths := []int{4, 5}

	assert.True(t, strings.HasPrefix(ansi.Strip(h.Render([]string{"Name", "Owner"}, widths, false)), " [ ] "))

	svc.Toggle("GH")
	assert.True(t, strings.HasPrefix(ansi.Strip(h.Render([]string{"Name", "Owner"}, widths, false)), " [-] "))

	svc.Toggle("MH")
	assert.True(t, strings.HasPrefix(ansi.Strip(h.Render([]string{"Name", "Owner"}, widths, false)), " [x] "))
}

func TestHeaderRenderer_OutsideSelection(t *testing.T) {
	h := NewHeaderRenderer(NewStyles(), scope.New())
	out := ansi.Strip(h.Render([]string{"Name", "Owner"}, []int{4, 5}, false))
	assert.Equal(t, "Name  Owner", out)
}

func TestHeaderRenderer_WithoutSelectAll(t *testing.T) {
	sc, svc := selectableScope(t, "GH")
	svc.Toggle("GH")
	h := NewHeaderRenderer(NewStyles(), sc).WithoutSelectAll()

	out := ansi.Strip(h.Render([]string{"Name"}, []int{4}, false))
	assert.Equal(t, "     Name", out)
}

func TestHeaderRenderer_EmptyHidesSelectAll(t *testing.T) {
	sc, _ := selectableScope(t)
	h := NewHeaderRenderer(NewStyles(), sc)

	out := ansi.Strip(h.Render([]string{"Name"}, []int{4}, true))
	assert.NotContains(t, out, "[x]")
	assert.Equal(t, "     Name", out)
}

func TestHeaderRenderer_ForDrawers(t *testing.T) {
	h := NewHeaderRenderer(NewStyles(), scope.New()).ForDrawers()
	out := ansi.Strip(h.Render([]string{"Name"}, []int{4}, false))
	assert.Equal(t, "   Name", out)
}

func TestBodyRowRenderer_Checkbox(t *testing.T) {
	sc, svc := selectableScope(t, "GH")
	r := NewBodyRowRenderer(NewStyles(), sc)
	row := domain.Row{ID: "GH", Cells: []string{"GitHub"}}

	assert.Equal(t, " [ ] GitHub", ansi.Strip(r.Render(row, []int{6}, RowState{})))

	svc.Toggle("GH")
	assert.Equal(t, " [x] GitHub", ansi.Strip(r.Render(row, []int{6}, RowState{})))
	assert.Equal(t, "▎[x] GitHub", ansi.Strip(r.Render(row, []int{6}, RowState{Activated: true})))
}

func TestBodyRowRenderer_NotSelectableIsBlank(t *testing.T) {
	sc, _ := selectableScope(t, "GH")
	r := NewBodyRowRenderer(NewStyles(), sc)
	row := domain.Row{ID: "AR", Cells: []string{"Archive"}, NotSelectable: true}

	assert.Equal(t, "     Archive", ansi.Strip(r.Render(row, []int{7}, RowState{})))
}

func TestBodyRowRenderer_WithoutDrawer(t *testing.T) {
	r := NewBodyRowRenderer(NewStyles(), scope.New()).WithoutDrawer()
	row := domain.Row{ID: "MH", Cells: []string{"Mailhog"}}

	assert.Equal(t, "   Mailhog", ansi.Strip(r.Render(row, []int{7}, RowState{})))
}

func TestDrawerRowRenderer_ColSpan(t *testing.T) {
	sc, _ := selectableScope(t, "GH")
	selectable := NewDrawerRowRenderer(NewStyles(), sc, newDrawer(t, "GH"))
	plain := NewDrawerRowRenderer(NewStyles(), scope.New(), newDrawer(t, "GH"))

	assert.Equal(t, 4, selectable.ColSpan(2))
	assert.Equal(t, 3, plain.ColSpan(2))
}

func TestDrawerRowRenderer_DrawerOnlyWhenExpanded(t *testing.T) {
	r := NewDrawerRowRenderer(NewStyles(), scope.New(), newDrawer(t, "GH"))
	row := domain.Row{ID: "GH", Cells: []string{"GitHub"}, Drawer: "git"}

	lines := r.Render(row, []int{6}, false)
	require.Len(t, lines, 1)
	assert.Equal(t, " ▶ GitHub", ansi.Strip(lines[0]))
	assert.Equal(t, "show details", r.Label())

	r.Drawer().Toggle()
	lines = r.Render(row, []int{6}, false)
	require.Len(t, lines, 2)
	assert.Equal(t, "▎▼ GitHub", ansi.Strip(lines[0]))
	assert.Contains(t, ansi.Strip(lines[1]), "git")
	assert.Equal(t, "hide details", r.Label())

	r.Drawer().Toggle()
	assert.Len(t, r.Render(row, []int{6}, false), 1)
}

func TestDrawerRowRenderer_ActiveIndicatorOnCheckboxWhenSelectable(t *testing.T) {
	sc, _ := selectableScope(t, "GH")
	r := NewDrawerRowRenderer(NewStyles(), sc, newDrawer(t, "GH"))
	row := domain.Row{ID: "GH", Cells: []string{"GitHub"}, Drawer: "hosted git"}

	assert.Equal(t, " [ ]  ▶ GitHub", ansi.Strip(r.Render(row, []int{6}, false)[0]))

	r.Drawer().Toggle()
	assert.Equal(t, "▎[ ]  ▼ GitHub", ansi.Strip(r.Render(row, []int{6}, false)[0]))
}

func TestDrawerRowRenderer_RowsAreIndependent(t *testing.T) {
	first := NewDrawerRowRenderer(NewStyles(), scope.New(), newDrawer(t, "GH"))
	second := NewDrawerRowRenderer(NewStyles(), scope.New(), newDrawer(t, "MH"))

	first.Drawer().Toggle()
	assert.True(t, first.Drawer().Expanded())
	assert.False(t, second.Drawer().Expanded())
}

func TestNewTableRenderer_MissingLabels(t *testing.T) {
	_, err := NewTableRenderer(NewStyles(), scope.New(), sampleTable(), TableOptions{Drawers: true})
	assert.ErrorIs(t, err, disclosure.ErrMissingLabel)

	_, err = NewTableRenderer(NewStyles(), scope.New(), sampleTable(), TableOptions{})
	assert.NoError(t, err)
}

func TestTableRenderer_ToggleDrawer(t *testing.T) {
	var expanded []string
	table := sampleTable()
	tr, err := NewTableRenderer(NewStyles(), scope.New(), table, TableOptions{
		Drawers:  true,
		Labels:   testLabels,
		OnExpand: func(id string) { expanded = append(expanded, id) },
	})
	require.NoError(t, err)

	assert.False(t, tr.ToggleDrawer("MH"))
	assert.True(t, tr.ToggleDrawer("GH"))
	assert.True(t, tr.ToggleDrawer("GH"))
	assert.True(t, tr.ToggleDrawer("GH"))
	assert.Equal(t, []string{"GH", "GH"}, expanded)

	out := ansi.Strip(tr.Render(TableView{Columns: table.Columns, Rows: table.Rows, Cursor: -1}))
	assert.Contains(t, out, "▼ GitHub")
	assert.Contains(t, out, "hosted git")
}

func TestTableRenderer_Render(t *testing.T) {
	sc, svc := selectableScope(t, "GH", "MH")
	table := sampleTable()
	tr, err := NewTableRenderer(NewStyles(), sc, table, TableOptions{Drawers: true, Labels: testLabels})
	require.NoError(t, err)

	svc.Toggle("MH")
	out := ansi.Strip(tr.Render(TableView{Columns: table.Columns, Rows: table.Rows, Cursor: -1}))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], " [-]    Name"))
	assert.True(t, strings.HasPrefix(lines[1], " [ ]  ▶ GitHub"))
	assert.True(t, strings.HasPrefix(lines[2], " [x]    Mailhog"))
	assert.True(t, strings.HasPrefix(lines[3], "        Archive"))
}

func TestTableRenderer_NoRows(t *testing.T) {
	tr, err := NewTableRenderer(NewStyles(), scope.New(), sampleTable(), TableOptions{})
	require.NoError(t, err)

	out := ansi.Strip(tr.Render(TableView{Columns: []string{"Name"}, Cursor: -1}))
	assert.Contains(t, out, "No rows match.")
}

func TestTableRenderer_ScrollIndicators(t *testing.T) {
	table := &domain.Table{Columns: []string{"Name"}}
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		table.Rows = append(table.Rows, domain.Row{ID: id, Cells: []string{id}})
	}
	tr, err := NewTableRenderer(NewStyles(), scope.New(), table, TableOptions{})
	require.NoError(t, err)

	out := ansi.Strip(tr.Render(TableView{Columns: table.Columns, Rows: table.Rows, Offset: 1, Height: 2, Cursor: -1}))
	assert.Contains(t, out, "↑ 1 more above ↑")
	assert.Contains(t, out, "↓ 2 more below ↓")
	assert.Contains(t, out, "B")
	assert.NotContains(t, out, "E\n")
}

func TestColumnWidths(t *testing.T) {
	rows := []domain.Row{{Cells: []string{"GitHub Enterprise", "infra"}}}

	assert.Equal(t, []int{17, 5}, columnWidths([]string{"Name", "Owner"}, rows, 0))

	widths := columnWidths([]string{"Name", "Owner"}, rows, 16)
	assert.Equal(t, []int{9, 5}, widths)
}

func TestFit(t *testing.T) {
	assert.Equal(t, "abc…", fit("abcdef", 4))
	assert.Equal(t, "ab  ", fit("ab", 4))
	assert.Equal(t, "", fit("ab", 0))
}
