package mdu

// Task is one path still to be measured, tagged with the root it belongs to.
type Task struct {
	// Path is the file or directory to measure.
	Path string
	// Root is the index of the root whose total the path contributes to.
	Root int
}

// taskStack is an unbounded LIFO of pending tasks.
//
// It is not safe for concurrent use on its own; every call must happen while
// holding the mutex of the Pool that owns it.
type taskStack struct {
	tasks []Task
}

// push appends a task on top of the stack.
func (s *taskStack) push(t Task) {
	s.tasks = append(s.tasks, t)
}

// pop removes and returns the most recently pushed task.
// The second result is false when the stack is empty.
func (s *taskStack) pop() (Task, bool) {
	n := len(s.tasks)
	if n == 0 {
		return Task{}, false
	}

	t := s.tasks[n-1]
	s.tasks[n-1] = Task{}
	s.tasks = s.tasks[:n-1]

	return t, true
}

// isEmpty reports whether the stack holds no tasks.
func (s *taskStack) isEmpty() bool {
	return len(s.tasks) == 0
}

// len returns the number of pending tasks.
func (s *taskStack) len() int {
	return len(s.tasks)
}

// clear drops every pending task.
func (s *taskStack) clear() {
	s.tasks = nil
}
