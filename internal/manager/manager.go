package manager

import (
	"fmt"
	"math/rand"

	"github.com/lishuoqwq/MaltesePet/internal/model"
	"github.com/lishuoqwq/MaltesePet/internal/platform"
	"github.com/lishuoqwq/MaltesePet/internal/store"
)

// Manager presents a single merged, ordered view of the available
// animations and enforces the invariants the store does not know about.
// It holds no state of its own beyond the store reference: every
// operation is a function of current disk/config state plus its
// arguments, including the active selection, which the caller owns.
type Manager struct {
	store *store.Store
}

// New creates a Manager over the given store.
func New(s *store.Store) *Manager {
	return &Manager{store: s}
}

// Store returns the underlying animation store.
func (m *Manager) Store() *store.Store {
	return m.store
}

// OrderedList returns the merged animation list: custom-ordered entries
// first (filtered to files that still exist), remaining discovered
// entries after, in discovery order. Deterministic for a given on-disk
// state and persisted order.
func (m *Manager) OrderedList() []string {
	entries := m.store.ListFiles()

	discovered := make([]string, 0, len(entries))
	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		discovered = append(discovered, e.Path)
		present[e.Path] = true
	}

	taken := make(map[string]bool)
	ordered := make([]string, 0, len(discovered))
	for _, p := range m.store.Order() {
		if present[p] && !taken[p] {
			ordered = append(ordered, p)
			taken[p] = true
		}
	}
	for _, p := range discovered {
		if !taken[p] {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

// Default returns the first entry of the ordered list, or
// model.ErrEmptyCollection when no animation exists anywhere.
func (m *Manager) Default() (string, error) {
	list := m.OrderedList()
	if len(list) == 0 {
		return "", model.ErrEmptyCollection
	}
	return list[0], nil
}

// SwitchToNext returns the entry after current in the ordered list,
// wrapping around at the end. A current path that is no longer in the
// list (stale or cleared selection) yields a uniformly-random member.
func (m *Manager) SwitchToNext(current string) (string, error) {
	list := m.OrderedList()
	if len(list) == 0 {
		return "", model.ErrEmptyCollection
	}

	norm := platform.NormalizePath(current)
	for i, p := range list {
		if p == norm {
			return list[(i+1)%len(list)], nil
		}
	}
	return list[rand.Intn(len(list))], nil
}

// DeletePlan describes a pending two-phase delete: the caller must
// release any open handle on DeletePath (stop the animation, switch the
// display to FallbackPath) before committing.
type DeletePlan struct {
	DeletePath   string
	FallbackPath string
}

// RequestDelete validates a delete of current and computes the fallback
// to display afterwards. It performs no filesystem mutation. Fails with
// model.ErrLastItemProtected when at most one animation remains.
func (m *Manager) RequestDelete(current string) (DeletePlan, error) {
	list := m.OrderedList()
	if len(list) <= 1 {
		return DeletePlan{}, model.ErrLastItemProtected
	}

	fallback, err := m.SwitchToNext(current)
	if err != nil {
		return DeletePlan{}, err
	}

	return DeletePlan{
		DeletePath:   platform.NormalizePath(current),
		FallbackPath: fallback,
	}, nil
}

// CommitDelete performs the physical delete for a previously requested
// plan. Call it only after the open handle on DeletePath has been
// released; on platforms that lock open files the delete fails
// otherwise. A delete that finds nothing to remove reports
// model.ErrNotFound — the caller already holds the fallback path and can
// still recover visually.
func (m *Manager) CommitDelete(plan DeletePlan) error {
	if !m.store.DeleteFile(plan.DeletePath) {
		return fmt.Errorf("%w: %s", model.ErrNotFound, plan.DeletePath)
	}
	return nil
}

// SetCustomOrder replaces the persisted display order. The input must be
// a permutation of the full current ordered list; anything else fails
// with model.ErrInvalidOrder and leaves the persisted order untouched.
func (m *Manager) SetCustomOrder(paths []string) error {
	current := m.OrderedList()
	if len(paths) != len(current) {
		return fmt.Errorf("%w: got %d entries, expected %d", model.ErrInvalidOrder, len(paths), len(current))
	}

	remaining := make(map[string]int, len(current))
	for _, p := range current {
		remaining[p]++
	}

	normalized := make([]string, 0, len(paths))
	for _, p := range paths {
		norm := platform.NormalizePath(p)
		if remaining[norm] == 0 {
			return fmt.Errorf("%w: %s is not in the current list", model.ErrInvalidOrder, norm)
		}
		remaining[norm]--
		normalized = append(normalized, norm)
	}

	m.store.SetOrder(normalized)
	return nil
}

// ReorderByIndexes applies a custom order given as 1-based positions into
// the current ordered list, the way the order dialog collects it.
func (m *Manager) ReorderByIndexes(oneBased []int) error {
	current := m.OrderedList()
	if len(oneBased) != len(current) {
		return fmt.Errorf("%w: got %d indexes, expected %d", model.ErrInvalidOrder, len(oneBased), len(current))
	}

	paths := make([]string, 0, len(oneBased))
	for _, idx := range oneBased {
		if idx < 1 || idx > len(current) {
			return fmt.Errorf("%w: index %d out of range 1..%d", model.ErrInvalidOrder, idx, len(current))
		}
		paths = append(paths, current[idx-1])
	}
	return m.SetCustomOrder(paths)
}

// ImportAndActivate imports sourcePath into the user root and returns the
// resulting path as the candidate next-active selection. Switching the
// display to it is the caller's responsibility.
func (m *Manager) ImportAndActivate(sourcePath string) (string, error) {
	entry, err := m.store.ImportFile(sourcePath)
	if err != nil {
		return "", err
	}
	return entry.Path, nil
}
