package records

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ledgerline-dev/ledgerline/internal/id"
	"github.com/ledgerline-dev/ledgerline/internal/model"
)

const recordsDir = "records"

// Service provides file-backed access to the deal and fixed-cost records
// under <root>/records/.
type Service struct {
	root string
}

// NewService creates a Service rooted at a data directory.
func NewService(root string) *Service {
	return &Service{root: root}
}

// Deals reads all deals. A missing file means no deals yet.
func (s *Service) Deals() ([]model.Deal, error) {
	f, err := os.Open(s.dealsPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening deals: %w", err)
	}
	defer f.Close()

	deals, err := ReadDeals(f)
	if err != nil {
		return nil, fmt.Errorf("reading deals: %w", err)
	}
	return deals, nil
}

// FixedCosts reads all fixed costs, active and inactive.
func (s *Service) FixedCosts() ([]model.FixedCost, error) {
	f, err := os.Open(s.costsPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening fixed costs: %w", err)
	}
	defer f.Close()

	costs, err := ReadCosts(f)
	if err != nil {
		return nil, fmt.Errorf("reading fixed costs: %w", err)
	}
	return costs, nil
}

// AddDeal allocates an ID for the deal, appends it to deals.csv and
// returns the ID.
func (s *Service) AddDeal(d model.Deal) (string, error) {
	existing, err := s.Deals()
	if err != nil {
		return "", err
	}

	ids := make([]string, len(existing))
	for i, e := range existing {
		ids[i] = e.ID
	}
	year := time.Now().Year()
	d.ID = id.FormatDealID(year, id.NextSeq(ids, year))

	if err := s.appendCSV(s.dealsPath(), DealsHeader, func(f *os.File) error {
		return AppendDeals(f, []model.Deal{d})
	}); err != nil {
		return "", err
	}
	return d.ID, nil
}

// AddFixedCost allocates an ID for the cost, appends it to
// fixed-costs.csv and returns the ID.
func (s *Service) AddFixedCost(c model.FixedCost) (string, error) {
	existing, err := s.FixedCosts()
	if err != nil {
		return "", err
	}

	ids := make([]string, len(existing))
	for i, e := range existing {
		ids[i] = e.ID
	}
	year := time.Now().Year()
	c.ID = id.FormatCostID(year, id.NextSeq(ids, year))

	if err := s.appendCSV(s.costsPath(), CostsHeader, func(f *os.File) error {
		return AppendCosts(f, []model.FixedCost{c})
	}); err != nil {
		return "", err
	}
	return c.ID, nil
}

// SetDealStatus updates a deal's status. When the new status is paid,
// receivedDate records when the money arrived.
func (s *Service) SetDealStatus(dealID string, status model.DealStatus, receivedDate time.Time) error {
	if !model.ValidStatus(status) {
		return fmt.Errorf("unknown status %q", status)
	}

	deals, err := s.Deals()
	if err != nil {
		return err
	}

	found := false
	for i := range deals {
		if deals[i].ID != dealID {
			continue
		}
		deals[i].Status = status
		if status == model.StatusPaid {
			deals[i].PaymentReceivedDate = receivedDate
		}
		found = true
		break
	}
	if !found {
		return fmt.Errorf("deal %s not found", dealID)
	}

	return s.rewriteDeals(deals)
}

// DeactivateCost flips a fixed cost's IsActive flag off. Records are
// never removed from disk.
func (s *Service) DeactivateCost(costID string) error {
	costs, err := s.FixedCosts()
	if err != nil {
		return err
	}

	found := false
	for i := range costs {
		if costs[i].ID != costID {
			continue
		}
		costs[i].IsActive = false
		found = true
		break
	}
	if !found {
		return fmt.Errorf("fixed cost %s not found", costID)
	}

	f, err := os.Create(s.costsPath())
	if err != nil {
		return fmt.Errorf("rewriting fixed costs: %w", err)
	}
	defer f.Close()
	return WriteCosts(f, costs)
}

func (s *Service) rewriteDeals(deals []model.Deal) error {
	f, err := os.Create(s.dealsPath())
	if err != nil {
		return fmt.Errorf("rewriting deals: %w", err)
	}
	defer f.Close()
	return WriteDeals(f, deals)
}

func (s *Service) appendCSV(path, header string, write func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating records dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	return write(f)
}

func (s *Service) dealsPath() string {
	return filepath.Join(s.root, recordsDir, "deals.csv")
}

func (s *Service) costsPath() string {
	return filepath.Join(s.root, recordsDir, "fixed-costs.csv")
}
