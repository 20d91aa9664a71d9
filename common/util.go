package common

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Failures maps the name of each failed task to its error.
type Failures map[string]error

// Names returns the failed task names sorted.
func (f Failures) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Err joins the failures as "name: err" in name order, nil when there
// are none.
func (f Failures) Err() error {
	if len(f) == 0 {
		return nil
	}
	errs := make([]error, 0, len(f))
	for _, name := range f.Names() {
		errs = append(errs, fmt.Errorf("%s: %w", name, f[name]))
	}
	return errors.Join(errs...)
}

// RunParallel runs every named task concurrently, waits for all of them
// and reports the ones that failed.
func RunParallel(tasks map[string]func() error) Failures {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures = Failures{}
	)
	for name, task := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := task(); err != nil {
				mu.Lock()
				failures[name] = err
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return failures
}
