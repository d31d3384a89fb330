package application

import (
	"sort"

	"uadm/internal/domain"
)

// Selection tracks which roster ids are chosen for a bulk action. It is a
// pure set transformer: the caller passes in the current roster ids, the set
// holds no notion of the roster itself. Not safe for concurrent use; it is
// owned by a single view, like the roster it selects from.
type Selection struct {
	members map[domain.AccountID]struct{}
}

func NewSelection() *Selection {
	return &Selection{members: map[domain.AccountID]struct{}{}}
}

// Toggle flips membership; a double toggle is a no-op.
func (s *Selection) Toggle(id domain.AccountID) {
	if _, ok := s.members[id]; ok {
		delete(s.members, id)
		return
	}
	s.members[id] = struct{}{}
}

// SelectAll sets membership to exactly currentIDs.
func (s *Selection) SelectAll(currentIDs []domain.AccountID) {
	s.members = make(map[domain.AccountID]struct{}, len(currentIDs))
	for _, id := range currentIDs {
		s.members[id] = struct{}{}
	}
}

func (s *Selection) ClearAll() {
	s.members = map[domain.AccountID]struct{}{}
}

// IsAllSelected reports whether the set is non-empty and equals currentIDs
// exactly, order-independent. This drives the select-all indicator.
func (s *Selection) IsAllSelected(currentIDs []domain.AccountID) bool {
	if len(s.members) == 0 {
		return false
	}

	unique := make(map[domain.AccountID]struct{}, len(currentIDs))
	for _, id := range currentIDs {
		unique[id] = struct{}{}
	}
	if len(unique) != len(s.members) {
		return false
	}
	for id := range unique {
		if _, ok := s.members[id]; !ok {
			return false
		}
	}

	return true
}

func (s *Selection) Contains(id domain.AccountID) bool {
	_, ok := s.members[id]
	return ok
}

func (s *Selection) Len() int {
	return len(s.members)
}

// IDs returns the members in a stable order.
func (s *Selection) IDs() []domain.AccountID {
	ids := make([]domain.AccountID, 0, len(s.members))
	for id := range s.members {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
