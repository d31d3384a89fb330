package domain

type ActionKind string

const (
	ActionBlock   ActionKind = "block"
	ActionUnblock ActionKind = "unblock"
	ActionDelete  ActionKind = "delete"
)

func (k ActionKind) Valid() bool {
	switch k {
	case ActionBlock, ActionUnblock, ActionDelete:
		return true
	default:
		return false
	}
}
