package utils

import "sync"

// Task is a unit of work run concurrently by RunTasks.
type Task func() error

// RunTasks executes the tasks concurrently and returns one error slot
// per task, index-aligned.
func RunTasks(tasks []Task) []error {
	var wg sync.WaitGroup
	errs := make([]error, len(tasks))

	wg.Add(len(tasks))
	for i, task := range tasks {
		go func(index int, t Task) {
			defer wg.Done()
			errs[index] = t()
		}(i, task)
	}

	wg.Wait()
	return errs
}
