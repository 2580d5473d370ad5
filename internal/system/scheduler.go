// internal/system/scheduler.go
package system

import "sort"

type task struct {
	at  float64
	seq uint64
	run func()
}

// Scheduler runs fire-once tasks on simulated time. Reset drops whatever is
// still waiting.
type Scheduler struct {
	seq   uint64
	tasks []task
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// At schedules fn to run once the clock reaches at (ms).
func (s *Scheduler) At(at float64, fn func()) {
	s.seq++
	s.tasks = append(s.tasks, task{at: at, seq: s.seq, run: fn})
}

// RunDue runs every task due at now, earliest first. Tasks scheduled by a
// running task are picked up in the same call if they are already due.
func (s *Scheduler) RunDue(now float64) int {
	ran := 0
	for {
		due := s.takeDue(now)
		if len(due) == 0 {
			return ran
		}
		for _, t := range due {
			t.run()
			ran++
		}
	}
}

func (s *Scheduler) takeDue(now float64) []task {
	var due, rest []task
	for _, t := range s.tasks {
		if t.at <= now {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	s.tasks = rest
	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	return due
}

// Pending returns the number of tasks waiting.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Reset drops all waiting tasks.
func (s *Scheduler) Reset() {
	s.tasks = nil
}
