package demo

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/skybi/classics/internal/config"
	"github.com/skybi/classics/internal/hashmap"
	"github.com/skybi/classics/internal/linkedlist"
	"github.com/skybi/classics/internal/sorting"
	"github.com/skybi/classics/internal/stack"
)

// Runner runs the demonstration scenarios of every data structure
type Runner struct {
	Config *config.Config
	RunID  uuid.UUID
	logger zerolog.Logger
}

// NewRunner creates a new scenario runner whose log lines all carry a fresh run ID
func NewRunner(cfg *config.Config, logger zerolog.Logger) *Runner {
	id := uuid.New()
	return &Runner{
		Config: cfg,
		RunID:  id,
		logger: logger.With().Str("run_id", id.String()).Logger(),
	}
}

// RunAll runs every scenario in order and stops at the first failing one
func (runner *Runner) RunAll() error {
	scenarios := []struct {
		name string
		run  func(zerolog.Logger) error
	}{
		{"hashmap", func(logger zerolog.Logger) error { _, err := runner.HashMap(logger); return err }},
		{"stack", func(logger zerolog.Logger) error { _, err := runner.Stack(logger); return err }},
		{"linkedlist", func(logger zerolog.Logger) error { _, err := runner.LinkedList(logger); return err }},
		{"sorting", func(logger zerolog.Logger) error { _, err := runner.Sorting(logger); return err }},
	}
	for _, scenario := range scenarios {
		logger := runner.logger.With().Str("scenario", scenario.name).Logger()
		logger.Info().Msg("running scenario...")
		if err := scenario.run(logger); err != nil {
			return fmt.Errorf("scenario %s: %w", scenario.name, err)
		}
	}
	return nil
}

// HashMapResult holds the observations of the hash map scenario
type HashMapResult struct {
	Value   int
	Found   bool
	Missing bool
}

// HashMap creates a chained map, inserts 3 -> 2, updates it to 3 -> 7, looks up 3 and 99 and destroys the map
func (runner *Runner) HashMap(logger zerolog.Logger) (*HashMapResult, error) {
	table, err := hashmap.NewLimited(runner.Config.BucketCount, runner.Config.MaxEntries)
	if err != nil {
		return nil, err
	}
	defer table.Destroy()

	if err := table.Insert(3, 2); err != nil {
		return nil, fmt.Errorf("unable to add the element: %w", err)
	}
	if err := table.Insert(3, 7); err != nil {
		return nil, fmt.Errorf("unable to update the element: %w", err)
	}

	result := new(HashMapResult)
	if entry, ok := table.Lookup(3); ok {
		result.Value = entry.Value()
		result.Found = true
		logger.Info().Int("key", entry.Key()).Int("value", entry.Value()).Msg("element found")
	} else {
		logger.Warn().Int("key", 3).Msg("element not found")
	}
	_, ok := table.Lookup(99)
	result.Missing = !ok
	logger.Info().Int("key", 99).Bool("found", ok).Msg("looked up absent key")
	logger.Debug().Int("buckets", table.Buckets()).Int("entries", table.Len()).Msg("destroying map")
	return result, nil
}

// Stack pushes 22, 5, 12, 2 and 63, pops once and pushes 199
func (runner *Runner) Stack(logger zerolog.Logger) (*stack.Stack, error) {
	st, err := stack.New(runner.Config.StackSize)
	if err != nil {
		return nil, err
	}
	for _, val := range []uint{22, 5, 12, 2, 63} {
		if err := st.Push(val); err != nil {
			return nil, err
		}
	}
	popped, err := st.Pop()
	if err != nil {
		return nil, err
	}
	logger.Info().Uint("value", popped).Msg("popped")
	if err := st.Push(199); err != nil {
		return nil, err
	}
	logger.Info().Int("size", st.Size()).Int("depth", st.Depth()).Str("content", st.String()).Msg("stack info")
	return st, nil
}

// LinkedList appends 12, 23, 16 and 8 to a new list
func (runner *Runner) LinkedList(logger zerolog.Logger) (*linkedlist.List, error) {
	list := linkedlist.New()
	for _, val := range []int{12, 23, 16, 8} {
		list.Append(val)
	}
	logger.Info().Str("content", list.String()).Msg("linked list")
	return list, nil
}

// Sorting bubble sorts a fixed table of ten integers
func (runner *Runner) Sorting(logger zerolog.Logger) ([]int, error) {
	table := []int{2, 4, 3, 2, 8, 6, 3, 12, 9, 1}
	logger.Info().Ints("table", table).Msg("before sorting")
	passes := sorting.Bubble(table)
	logger.Info().Ints("table", table).Int("passes", passes).Msg("after sorting")
	return table, nil
}
