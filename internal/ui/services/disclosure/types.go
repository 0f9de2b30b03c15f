package disclosure

// State is either Collapsed or Expanded
type State int

const (
	Collapsed State = iota
	Expanded
)

func (s State) String() string {
	if s == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// Labels describe the toggle in each state, e.g. "show details" and
// "hide details". Both are required.
type Labels struct {
	Collapsed string
	Expanded  string
}

// Event types
type DrawerExpandedEvent struct {
	Row string
}

type DrawerCollapsedEvent struct {
	Row string
}
