// internal/store/requisition_store.go
package store

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"guided-buying-workers/internal/models"
)

var prDigits = regexp.MustCompile(`\d+`)

// RequisitionStore holds created purchase requisitions for the lifetime
// of the process. PR numbers are strictly monotonic and never reused,
// even if a requisition is removed.
type RequisitionStore struct {
	mu      sync.RWMutex
	byNum   map[string]*models.PurchaseRequisition
	counter int
}

// NewRequisitionStore creates an empty store with the counter at zero.
func NewRequisitionStore() *RequisitionStore {
	return &RequisitionStore{
		byNum: make(map[string]*models.PurchaseRequisition),
	}
}

// NextNumber allocates the next PR number in the PR-0001 format.
func (s *RequisitionStore) NextNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	return fmt.Sprintf("PR-%04d", s.counter)
}

// Put stores a requisition under its PR number.
func (s *RequisitionStore) Put(pr *models.PurchaseRequisition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byNum[pr.PRNumber] = pr
}

// GetByNumber looks up a requisition by any reasonable spelling of its
// number ("1", "PR1", "pr-0001", "PR-0001").
func (s *RequisitionStore) GetByNumber(number string) (*models.PurchaseRequisition, bool) {
	canonical, ok := NormalizeNumber(number)
	if !ok {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	pr, ok := s.byNum[canonical]
	return pr, ok
}

// ListAll returns every stored requisition, newest first. Ordering is by
// the numeric part of the PR number, since the zero-padded form stops
// sorting lexically once numbers pass four digits.
func (s *RequisitionStore) ListAll() []*models.PurchaseRequisition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.PurchaseRequisition, 0, len(s.byNum))
	for _, pr := range s.byNum {
		out = append(out, pr)
	}
	sort.Slice(out, func(i, j int) bool {
		return numberValue(out[i].PRNumber) > numberValue(out[j].PRNumber)
	})
	return out
}

// numberValue extracts the numeric part of a PR number for ordering.
func numberValue(prNumber string) int {
	digits := prDigits.FindString(prNumber)
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// Count returns the number of stored requisitions.
func (s *RequisitionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byNum)
}

// Reset clears all requisitions and restarts numbering. Test use only.
func (s *RequisitionStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byNum = make(map[string]*models.PurchaseRequisition)
	s.counter = 0
}

// NormalizeNumber converts any spelling of a PR number to the canonical
// PR-0001 form. Returns ok=false when no digits are present.
func NormalizeNumber(raw string) (string, bool) {
	digits := prDigits.FindString(strings.TrimSpace(raw))
	if digits == "" {
		return "", false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return "", false
	}
	return fmt.Sprintf("PR-%04d", n), true
}
