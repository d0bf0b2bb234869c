package session

import "github.com/arya020/FormBuilder/internal/models"

// CategorizeSession tracks where a respondent dragged each item. The
// placements always partition the item set: every item is either in exactly
// one container or in the unassigned pool.
type CategorizeSession struct {
	content    *models.CategorizeContent
	placements map[string]string
}

// NewCategorizeSession seeds the session from the authored content. Items
// the author pre-placed into a container start there, everything else starts
// unassigned.
func NewCategorizeSession(content *models.CategorizeContent) *CategorizeSession {
	s := &CategorizeSession{
		content:    content.Clone().(*models.CategorizeContent),
		placements: make(map[string]string, len(content.Items)),
	}
	for _, item := range s.content.Items {
		if item.ContainerID != nil {
			s.placements[item.ID] = *item.ContainerID
		} else {
			s.placements[item.ID] = models.UnassignedTarget
		}
	}
	return s
}

func (s *CategorizeSession) QuestionType() models.QuestionType {
	return models.QuestionCategorize
}

// Assign drops an item into a container or back into the unassigned pool.
// Unknown item or container ids are silent no-ops (stale drags).
func (s *CategorizeSession) Assign(itemID, target string) {
	if _, ok := s.placements[itemID]; !ok {
		return
	}
	if target != models.UnassignedTarget && !s.content.HasContainer(target) {
		return
	}
	s.placements[itemID] = target
}

// Placement returns where an item currently sits.
func (s *CategorizeSession) Placement(itemID string) (string, bool) {
	target, ok := s.placements[itemID]
	return target, ok
}

// Unassigned lists item ids still in the pool, in authored order.
func (s *CategorizeSession) Unassigned() []string {
	var ids []string
	for _, item := range s.content.Items {
		if s.placements[item.ID] == models.UnassignedTarget {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// ItemsIn lists item ids currently placed in a container, in authored order.
func (s *CategorizeSession) ItemsIn(containerID string) []string {
	var ids []string
	for _, item := range s.content.Items {
		if s.placements[item.ID] == containerID {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// Complete reports whether every item was placed into some container.
func (s *CategorizeSession) Complete() bool {
	for _, target := range s.placements {
		if target == models.UnassignedTarget {
			return false
		}
	}
	return true
}

// Answer snapshots the placement relation.
func (s *CategorizeSession) Answer() models.Answer {
	placements := make(map[string]string, len(s.placements))
	for itemID, target := range s.placements {
		placements[itemID] = target
	}
	return &models.CategorizeAnswer{Placements: placements}
}
