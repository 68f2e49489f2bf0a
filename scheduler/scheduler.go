// Package scheduler implements a priority task scheduler on top of the
// skip list priority queue. Lower priority values run first; tasks can be
// re-prioritized or withdrawn while queued.
package scheduler

import (
	"github.com/j-raghavan/skiplist/pqueue"
)

// Task is a queued unit of work.
type Task struct {
	Priority int
	Name     string
}

// Scheduler holds pending tasks ordered by priority.
type Scheduler struct {
	queue *pqueue.Queue[int, string]
}

// New returns an empty scheduler.
func New() (*Scheduler, error) {
	q, err := pqueue.New[int, string]()
	if err != nil {
		return nil, err
	}
	return &Scheduler{queue: q}, nil
}

// Add queues a task. A task already queued under the same name is moved
// to the new priority. Add reports false when another task already holds
// the priority.
func (s *Scheduler) Add(name string, priority int) bool {
	return s.queue.Put(priority, name)
}

// ExecuteNext dequeues and returns the highest-priority task name. The
// boolean is false when no tasks are pending.
func (s *Scheduler) ExecuteNext() (string, bool) {
	_, name, err := s.queue.Pop()
	if err != nil {
		return "", false
	}
	return name, true
}

// PeekNext returns the next task without dequeuing it.
func (s *Scheduler) PeekNext() (Task, bool) {
	priority, name, err := s.queue.Peek()
	if err != nil {
		return Task{}, false
	}
	return Task{Priority: priority, Name: name}, true
}

// Remove withdraws a queued task by name.
func (s *Scheduler) Remove(name string) bool {
	return s.queue.Remove(name)
}

// UpdatePriority moves a queued task to a new priority.
func (s *Scheduler) UpdatePriority(name string, priority int) bool {
	return s.queue.UpdatePriority(name, priority)
}

// PriorityOf returns the priority a task is queued at.
func (s *Scheduler) PriorityOf(name string) (int, bool) {
	return s.queue.PriorityOf(name)
}

// Tasks lists pending tasks in execution order.
func (s *Scheduler) Tasks() []Task {
	tasks := make([]Task, 0, s.queue.Len())
	s.queue.Each(func(priority int, name string) bool {
		tasks = append(tasks, Task{Priority: priority, Name: name})
		return true
	})
	return tasks
}

// Pending returns the number of queued tasks.
func (s *Scheduler) Pending() int {
	return s.queue.Len()
}

// Clear withdraws every queued task.
func (s *Scheduler) Clear() {
	for {
		if _, _, err := s.queue.Pop(); err != nil {
			return
		}
	}
}
