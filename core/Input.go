package core

// Action is a logical input the match samples once per tick.
type Action int

const (
	ActionLeftJump Action = iota
	ActionRightJump
	ActionLeftReady
	ActionRightReady
	ActionRestart
)

func (a Action) String() string {
	switch a {
	case ActionLeftJump:
		return "left-jump"
	case ActionRightJump:
		return "right-jump"
	case ActionLeftReady:
		return "left-ready"
	case ActionRightReady:
		return "right-ready"
	case ActionRestart:
		return "restart"
	}
	return "unknown"
}

// Controls answers whether an action's key is held during the current tick.
type Controls interface {
	Held(a Action) bool
}

// Random is the source for serve direction and serve angle.
// *math/rand.Rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// KeySet is a fixed snapshot of held actions.
type KeySet map[Action]bool

func (k KeySet) Held(a Action) bool { return k[a] }

// Keys builds a KeySet with the given actions held.
func Keys(held ...Action) KeySet {
	k := make(KeySet, len(held))
	for _, a := range held {
		k[a] = true
	}
	return k
}

func jumpAction(s Side) Action {
	if s == SideRight {
		return ActionRightJump
	}
	return ActionLeftJump
}
