package editor

import (
	"math/rand"
	"testing"

	apperrors "github.com/arya020/FormBuilder/internal/errors"
	"github.com/arya020/FormBuilder/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeAddItemValidation(t *testing.T) {
	e := NewCategorizeEditor()

	_, err := e.AddItem("   ")
	require.Error(t, err)
	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)

	item, err := e.AddItem("  Mercury  ")
	require.NoError(t, err)
	assert.Equal(t, "Mercury", item.Text, "item text should be trimmed")
	assert.Nil(t, e.Snapshot().Items[0].ContainerID, "new items start unassigned")
}

func TestCategorizeAddContainerValidation(t *testing.T) {
	e := NewCategorizeEditor()

	_, err := e.AddContainer("")
	require.Error(t, err)

	container, err := e.AddContainer("Planets")
	require.NoError(t, err)
	assert.NotEmpty(t, container.ID)
}

func TestCategorizeAssign(t *testing.T) {
	e := NewCategorizeEditor()
	item, _ := e.AddItem("Mercury")
	planets, _ := e.AddContainer("Planets")
	stars, _ := e.AddContainer("Stars")

	e.Assign(item.ID, planets.ID)
	snap := e.Snapshot()
	require.NotNil(t, snap.Items[0].ContainerID)
	assert.Equal(t, planets.ID, *snap.Items[0].ContainerID)

	// Dropping into another container moves, never duplicates.
	e.Assign(item.ID, stars.ID)
	snap = e.Snapshot()
	assert.Equal(t, stars.ID, *snap.Items[0].ContainerID)

	e.Assign(item.ID, models.UnassignedTarget)
	assert.Nil(t, e.Snapshot().Items[0].ContainerID)
}

func TestCategorizeAssignUnknownIDsAreNoOps(t *testing.T) {
	e := NewCategorizeEditor()
	item, _ := e.AddItem("Mercury")
	planets, _ := e.AddContainer("Planets")
	e.Assign(item.ID, planets.ID)

	e.Assign("missing-item", planets.ID)
	e.Assign(item.ID, "missing-container")

	snap := e.Snapshot()
	require.NotNil(t, snap.Items[0].ContainerID)
	assert.Equal(t, planets.ID, *snap.Items[0].ContainerID, "placement must survive stale drops")
}

func TestCategorizeRemoveContainerUnassignsItems(t *testing.T) {
	e := NewCategorizeEditor()
	first, _ := e.AddItem("Mercury")
	second, _ := e.AddItem("Mars")
	planets, _ := e.AddContainer("Planets")
	e.Assign(first.ID, planets.ID)
	e.Assign(second.ID, planets.ID)

	e.RemoveContainer(planets.ID)

	snap := e.Snapshot()
	assert.Empty(t, snap.Containers)
	require.Len(t, snap.Items, 2, "removing a container must not delete its items")
	for _, item := range snap.Items {
		assert.Nil(t, item.ContainerID)
	}
}

func TestCategorizeRemoveItem(t *testing.T) {
	e := NewCategorizeEditor()
	item, _ := e.AddItem("Mercury")
	keep, _ := e.AddItem("Mars")

	e.RemoveItem(item.ID)
	e.RemoveItem("missing")

	snap := e.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, keep.ID, snap.Items[0].ID)
}

// Any sequence of assigns must keep the items a true partition across the
// unassigned pool and the containers: each item in exactly one place.
func TestCategorizeAssignSequencePreservesPartition(t *testing.T) {
	e := NewCategorizeEditor()

	var itemIDs []string
	for _, text := range []string{"Mercury", "Venus", "Mars", "Sirius", "Vega"} {
		item, err := e.AddItem(text)
		require.NoError(t, err)
		itemIDs = append(itemIDs, item.ID)
	}
	var targets []string
	for _, title := range []string{"Planets", "Stars", "Moons"} {
		container, err := e.AddContainer(title)
		require.NoError(t, err)
		targets = append(targets, container.ID)
	}
	targets = append(targets, models.UnassignedTarget)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		e.Assign(itemIDs[rng.Intn(len(itemIDs))], targets[rng.Intn(len(targets))])

		snap := e.Snapshot()
		require.Len(t, snap.Items, len(itemIDs), "no item may appear twice or vanish")
		seen := map[string]bool{}
		for _, item := range snap.Items {
			require.False(t, seen[item.ID])
			seen[item.ID] = true
			if item.ContainerID != nil {
				require.True(t, snap.HasContainer(*item.ContainerID),
					"placement must reference an existing container")
			}
		}
	}
}

func TestEditCategorizeDoesNotMutateInput(t *testing.T) {
	containerID := "c1"
	content := &models.CategorizeContent{
		Items:      []models.Item{{ID: "i1", Text: "Mercury", ContainerID: &containerID}},
		Containers: []models.Container{{ID: "c1", Title: "Planets"}},
	}

	e := EditCategorize(content)
	e.Assign("i1", models.UnassignedTarget)
	e.RemoveContainer("c1")

	require.NotNil(t, content.Items[0].ContainerID)
	assert.Equal(t, "c1", *content.Items[0].ContainerID)
	assert.Len(t, content.Containers, 1)
}
