package mdu

// work is the loop run by every worker goroutine.
//
// Termination is detected, not commanded: a worker that finds the pool empty
// counts itself idle and waits. The worker that brings the idle count up to
// the number of workers knows nobody is left to push new tasks, so it marks
// the run terminated and wakes everyone else. idle, terminated and the task
// stack share one mutex, so no push can slip in between the emptiness check
// and the wait.
func (p *Pool) work(id int) {
	p.log.printf("[debug]: worker %d: started\n", id)

	p.mu.Lock()

	for {
		for p.tasks.isEmpty() {
			p.idle++

			if p.idle == p.numWorkers {
				p.terminated = true
				p.cond.Broadcast()
				p.mu.Unlock()

				p.log.printf("[debug]: worker %d: detected completion\n", id)

				return
			}

			p.cond.Wait()
			p.idle--

			if p.terminated {
				p.mu.Unlock()

				p.log.printf("[debug]: worker %d: terminated\n", id)

				return
			}
		}

		// The loop above only exits with a non-empty stack and the lock held.
		task, _ := p.tasks.pop()
		p.mu.Unlock()

		p.process(task)

		p.mu.Lock()
	}
}
