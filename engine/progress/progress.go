// Package progress tracks the completion of long running tasks, like loading assets.
//
// Tasks report their state by id. The counter is complete once every task
// that ever reported is done.
package progress

import (
	"log/slog"
	"maps"
	"slices"
)

// Counter holds the latest reported state of each task.
type Counter struct {
	tasks map[string]bool
	done  int
}

// Progress is a snapshot of a Counter.
type Progress struct {
	Done  int
	Total int
}

// Fraction returns the share of tasks done, or zero if there are no tasks.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}

	return float64(p.Done) / float64(p.Total)
}

// Report inserts or updates the state of a task. Reporting a task as not
// done after it was done reduces the done count again.
func (c *Counter) Report(taskId string, done bool) {
	if c.tasks == nil {
		c.tasks = map[string]bool{}
	}

	previous, known := c.tasks[taskId]
	c.tasks[taskId] = done

	switch {
	case !known && done, known && !previous && done:
		c.done++

	case known && previous && !done:
		c.done--
		slog.Debug("Task is pending again", slog.String("task", taskId))
	}
}

func (c *Counter) DoneCount() int {
	return c.done
}

func (c *Counter) TotalCount() int {
	return len(c.tasks)
}

// IsComplete is true if at least one task reported and all tasks are done.
func (c *Counter) IsComplete() bool {
	return c.TotalCount() > 0 && c.done == c.TotalCount()
}

func (c *Counter) Progress() Progress {
	return Progress{Done: c.done, Total: c.TotalCount()}
}

// Pending returns the ids of all tasks that are not done yet, in sorted order.
func (c *Counter) Pending() []string {
	var pending []string

	for _, taskId := range slices.Sorted(maps.Keys(c.tasks)) {
		if !c.tasks[taskId] {
			pending = append(pending, taskId)
		}
	}

	return pending
}

// Reset forgets about all tasks.
func (c *Counter) Reset() {
	clear(c.tasks)
	c.done = 0
}
