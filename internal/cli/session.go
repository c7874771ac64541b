package cli

import (
	"fmt"

	"github.com/Jiacheng-WU/egglog-parallel/internal/primitive"
	"github.com/Jiacheng-WU/egglog-parallel/internal/sort"
)

// newSession builds a fresh store and a registry with the rational sort
// installed. Every command works against its own session so evaluations
// never observe handles from a previous invocation.
func newSession() (*primitive.Registry, *sort.Store, error) {
	store := sort.NewStore()
	reg := primitive.NewRegistry()
	if err := sort.NewRationalSort(store).Register(reg); err != nil {
		return nil, nil, fmt.Errorf("register rational sort: %w", err)
	}
	return reg, store, nil
}
