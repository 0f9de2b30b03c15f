package selection

// Capability is what header and row renderers see of a selection.
// Values are snapshots: a Service hands out a new one after every change,
// so comparing two values (or their versions) detects updates.
type Capability interface {
	InSelection() bool
	IsSelected(id ID) bool
	AllSelected() bool
	SomeSelected() bool
	ToggleSelected(id ID)
	ToggleSelectAll()
	DeselectAll()
	Version() uint64
}

// None is the capability used outside any selectable table. It reports no
// selection and ignores mutations.
var None Capability = none{}

type none struct{}

func (none) InSelection() bool  { return false }
func (none) IsSelected(ID) bool { return false }
func (none) AllSelected() bool  { return false }
func (none) SomeSelected() bool { return false }
func (none) ToggleSelected(ID)  {}
func (none) ToggleSelectAll()   {}
func (none) DeselectAll()       {}
func (none) Version() uint64    { return 0 }

type snapshot struct {
	svc     *Service
	version uint64
}

func (c *snapshot) InSelection() bool     { return true }
func (c *snapshot) IsSelected(id ID) bool { return c.svc.IsSelected(id) }
func (c *snapshot) AllSelected() bool     { return c.svc.AllSelected() }
func (c *snapshot) SomeSelected() bool    { return c.svc.SomeSelected() }
func (c *snapshot) ToggleSelected(id ID)  { c.svc.Toggle(id) }
func (c *snapshot) ToggleSelectAll()      { c.svc.ToggleAll() }
func (c *snapshot) DeselectAll()          { c.svc.DeselectAll() }
func (c *snapshot) Version() uint64       { return c.version }
