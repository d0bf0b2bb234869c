package editor

import (
	"strings"

	apperrors "github.com/arya020/FormBuilder/internal/errors"
	"github.com/arya020/FormBuilder/internal/models"
)

// CategorizeEditor manages the items, containers and item placement of a
// categorize question during authoring. At every point the unassigned pool
// and the containers form a true partition of all items.
type CategorizeEditor struct {
	content models.CategorizeContent
}

// NewCategorizeEditor starts an editor with no items and no containers.
func NewCategorizeEditor() *CategorizeEditor {
	return &CategorizeEditor{}
}

// EditCategorize resumes authoring over existing content. The editor works
// on its own copy; the caller's content is never mutated.
func EditCategorize(content *models.CategorizeContent) *CategorizeEditor {
	return &CategorizeEditor{content: *content.Clone().(*models.CategorizeContent)}
}

// AddItem creates an unassigned item from the given text.
func (e *CategorizeEditor) AddItem(text string) (models.Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Item{}, apperrors.NewValidationError("text", "is required", text)
	}

	item := models.Item{ID: newID(), Text: text}
	e.content.Items = append(e.content.Items, item)
	return item, nil
}

// AddContainer creates a new container at the end of the container sequence.
func (e *CategorizeEditor) AddContainer(title string) (models.Container, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Container{}, apperrors.NewValidationError("title", "is required", title)
	}

	container := models.Container{ID: newID(), Title: title}
	e.content.Containers = append(e.content.Containers, container)
	return container, nil
}

// Assign places an item into a container, or back into the unassigned pool
// when target is models.UnassignedTarget. The item leaves its previous
// location implicitly since placement is a single field. Unknown item or
// container ids are silent no-ops: the interaction surface cannot produce
// them, so they indicate a stale drag, not a user error.
func (e *CategorizeEditor) Assign(itemID, target string) {
	item := e.itemByID(itemID)
	if item == nil {
		return
	}

	if target == models.UnassignedTarget {
		item.ContainerID = nil
		return
	}
	if !e.content.HasContainer(target) {
		return
	}
	containerID := target
	item.ContainerID = &containerID
}

// RemoveItem deletes an item wherever it currently sits. Unknown ids are
// no-ops.
func (e *CategorizeEditor) RemoveItem(itemID string) {
	for i := range e.content.Items {
		if e.content.Items[i].ID == itemID {
			e.content.Items = append(e.content.Items[:i], e.content.Items[i+1:]...)
			return
		}
	}
}

// RemoveContainer deletes a container. Its items are kept and become
// unassigned rather than disappearing with the container.
func (e *CategorizeEditor) RemoveContainer(containerID string) {
	found := false
	for i := range e.content.Containers {
		if e.content.Containers[i].ID == containerID {
			e.content.Containers = append(e.content.Containers[:i], e.content.Containers[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return
	}

	for i := range e.content.Items {
		if e.content.Items[i].ContainerID != nil && *e.content.Items[i].ContainerID == containerID {
			e.content.Items[i].ContainerID = nil
		}
	}
}

// Snapshot returns a deep copy of the committed content.
func (e *CategorizeEditor) Snapshot() *models.CategorizeContent {
	return e.content.Clone().(*models.CategorizeContent)
}

func (e *CategorizeEditor) itemByID(id string) *models.Item {
	for i := range e.content.Items {
		if e.content.Items[i].ID == id {
			return &e.content.Items[i]
		}
	}
	return nil
}
