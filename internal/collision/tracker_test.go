package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Collisions())
}

func TestTracker_Track_DistinctDestinations(t *testing.T) {
	tracker := NewTracker()

	require.False(t, tracker.Track("new1", "old1"))
	require.False(t, tracker.Track("new2", "old2"))

	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Nil(t, tracker.Collisions())
	require.Equal(t, []string{"old1"}, tracker.Sources("new1"))
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker()

	require.False(t, tracker.Track("merged", "a"))
	require.False(t, tracker.Track("other", "x"))
	require.True(t, tracker.Track("merged", "b"))
	require.True(t, tracker.Track("merged", "c"))

	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())
	require.Equal(t, []string{"merged"}, tracker.Collisions())
	require.Equal(t, []string{"a", "b", "c"}, tracker.Sources("merged"))
}

func TestTracker_Collisions_FirstSeenOrder(t *testing.T) {
	tracker := NewTracker()

	tracker.Track("d2", "a")
	tracker.Track("d1", "b")
	tracker.Track("d1", "c")
	tracker.Track("d2", "e")

	require.Equal(t, []string{"d2", "d1"}, tracker.Collisions())
}

func TestTracker_Sources_Unknown(t *testing.T) {
	require.Nil(t, NewTracker().Sources("missing"))
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	tracker.Track("d", "a")
	tracker.Track("d", "b")
	require.True(t, tracker.HasCollision())

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Nil(t, tracker.Collisions())
	require.Nil(t, tracker.Sources("d"))

	require.False(t, tracker.Track("d", "c"))
	require.Equal(t, []string{"c"}, tracker.Sources("d"))
}
