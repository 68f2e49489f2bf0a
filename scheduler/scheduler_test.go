package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newScheduler(t *testing.T) *Scheduler {
	t.Helper()
	s, err := New()
	require.NoError(t, err)
	return s
}

func TestExecutesInPriorityOrder(t *testing.T) {
	s := newScheduler(t)

	require.True(t, s.Add("send email", 3))
	require.True(t, s.Add("backup database", 1))
	require.True(t, s.Add("update website", 2))
	require.True(t, s.Add("review code", 4))
	require.True(t, s.Add("fix critical bug", 0))
	require.Equal(t, 5, s.Pending())

	want := []string{
		"fix critical bug",
		"backup database",
		"update website",
		"send email",
		"review code",
	}
	for _, name := range want {
		got, ok := s.ExecuteNext()
		require.True(t, ok)
		require.Equal(t, name, got)
	}

	_, ok := s.ExecuteNext()
	require.False(t, ok)
}

func TestReAddMovesTask(t *testing.T) {
	s := newScheduler(t)

	require.True(t, s.Add("task", 10))
	require.True(t, s.Add("task", 1))
	require.Equal(t, 1, s.Pending())

	priority, ok := s.PriorityOf("task")
	require.True(t, ok)
	require.Equal(t, 1, priority)
}

func TestAddRejectsOccupiedPriority(t *testing.T) {
	s := newScheduler(t)

	require.True(t, s.Add("first", 1))
	require.False(t, s.Add("second", 1))
	require.Equal(t, 1, s.Pending())
}

func TestRemoveAndUpdate(t *testing.T) {
	s := newScheduler(t)

	s.Add("a", 1)
	s.Add("b", 2)

	require.True(t, s.Remove("a"))
	require.False(t, s.Remove("a"))

	require.True(t, s.UpdatePriority("b", 0))
	require.False(t, s.UpdatePriority("ghost", 5))

	next, ok := s.PeekNext()
	require.True(t, ok)
	require.Equal(t, Task{Priority: 0, Name: "b"}, next)
	require.Equal(t, 1, s.Pending())
}

func TestTasksListsExecutionOrder(t *testing.T) {
	s := newScheduler(t)

	s.Add("low", 9)
	s.Add("high", 1)
	s.Add("mid", 5)

	require.Equal(t, []Task{
		{Priority: 1, Name: "high"},
		{Priority: 5, Name: "mid"},
		{Priority: 9, Name: "low"},
	}, s.Tasks())
}

func TestClear(t *testing.T) {
	s := newScheduler(t)

	s.Add("a", 1)
	s.Add("b", 2)
	s.Clear()

	require.Zero(t, s.Pending())
	_, ok := s.PeekNext()
	require.False(t, ok)
}
