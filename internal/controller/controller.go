// Package controller coordinates validated user input, the transaction store
// and the view. It owns the single active filter and pushes a fresh view after
// every state change.
package controller

import (
	"fmt"
	"strings"
	"sync"

	"fjacquet/expense-tracker/internal/filter"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/trackererror"
	"fjacquet/expense-tracker/internal/validation"

	"github.com/shopspring/decimal"
)

// TransactionRepository is the storage the controller writes to.
type TransactionRepository interface {
	Add(tx *models.Transaction)
	Remove(tx *models.Transaction) bool
	Snapshot() []*models.Transaction
	Find(id string) (*models.Transaction, bool)
}

// View receives the visible transactions and their total after every change.
type View interface {
	Render(visible []*models.Transaction, total decimal.Decimal)
}

// FilterState is the controller's filter slot. A zero FilterState means no
// filter is active.
type FilterState struct {
	Kind   filter.Kind
	Filter filter.TransactionFilter
}

// Active reports whether a filter narrows the view.
func (s FilterState) Active() bool {
	return s.Filter != nil
}

func (s FilterState) String() string {
	if s.Filter == nil {
		return string(filter.KindNone)
	}
	return s.Filter.Name()
}

// Controller is the single source of truth for what is displayed.
// All exported methods are safe for concurrent use; each one holds the lock
// across the store change and the following render.
type Controller struct {
	mu     sync.Mutex
	store  TransactionRepository
	view   View
	logger logging.Logger
	state  FilterState
}

// New creates a controller and renders the initial view.
func New(store TransactionRepository, view View, logger logging.Logger) *Controller {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if view == nil {
		view = discardView{}
	}
	c := &Controller{
		store:  store,
		view:   view,
		logger: logger,
		state:  FilterState{Kind: filter.KindNone},
	}
	c.Refresh()
	return c
}

// AddTransaction validates amount and category, stores a new transaction and
// refreshes the view. A rejected input leaves store and view untouched and the
// returned error matches trackererror.ErrInvalidAmount or ErrInvalidCategory.
func (c *Controller) AddTransaction(amount decimal.Decimal, category string) error {
	log := c.logger.WithFields(
		logging.F(logging.FieldOperation, "add_transaction"),
		logging.F(logging.FieldAmount, models.AmountText(amount)),
		logging.F(logging.FieldCategory, category))

	if err := validation.ValidateAmount(amount); err != nil {
		log.WithError(err).Warn("Transaction rejected")
		return err
	}
	if err := validation.ValidateCategory(category); err != nil {
		log.WithError(err).Warn("Transaction rejected")
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	tx := models.NewTransaction(amount, category)
	c.store.Add(tx)
	log.Info("Transaction added", logging.F(logging.FieldTransactionID, tx.ID()))
	c.refreshLocked()
	return nil
}

// RemoveTransaction removes tx from the store and refreshes the view.
// Removing a transaction that is not stored is a no-op that still refreshes.
func (c *Controller) RemoveTransaction(tx *models.Transaction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := c.store.Remove(tx)
	if removed {
		c.logger.Info("Transaction removed",
			logging.F(logging.FieldOperation, "remove_transaction"),
			logging.F(logging.FieldTransactionID, tx.ID()))
	}
	c.refreshLocked()
	return removed
}

// Find looks a stored transaction up by id, whether or not it is visible.
func (c *Controller) Find(id string) (*models.Transaction, bool) {
	return c.store.Find(id)
}

// RemoveVisible removes the transaction shown on the given 1-based row of the
// current view.
func (c *Controller) RemoveVisible(row int) (*models.Transaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	visible, _ := c.computeLocked()
	if row < 1 || row > len(visible) {
		c.logger.Warn("Remove rejected",
			logging.F(logging.FieldOperation, "remove_visible"),
			logging.F(logging.FieldRow, row),
			logging.F(logging.FieldCount, len(visible)))
		return nil, fmt.Errorf("remove row %d of %d: %w", row, len(visible), trackererror.ErrRowOutOfRange)
	}

	tx := visible[row-1]
	c.store.Remove(tx)
	c.logger.Info("Transaction removed",
		logging.F(logging.FieldOperation, "remove_visible"),
		logging.F(logging.FieldRow, row),
		logging.F(logging.FieldTransactionID, tx.ID()))
	c.refreshLocked()
	return tx, nil
}

// ApplyFilter activates the filter selected by kindToken ("none", "category",
// "amount-min"; unknown tokens mean "none") built from rawParameter, replacing
// any active filter. On rejection the active filter and the view are left as
// they were.
func (c *Controller) ApplyFilter(kindToken, rawParameter string) error {
	kind := filter.ParseKind(kindToken)
	log := c.logger.WithFields(
		logging.F(logging.FieldOperation, "apply_filter"),
		logging.F(logging.FieldFilterKind, string(kind)),
		logging.F(logging.FieldParameter, rawParameter))

	if !filter.IsKnownKind(kindToken) {
		log.Warn("Unknown filter kind, clearing filter", logging.F(logging.FieldReason, kindToken))
	}

	var next FilterState
	switch kind {
	case filter.KindCategory:
		f, err := filter.NewCategoryFilter(rawParameter)
		if err != nil {
			err = &trackererror.FilterError{Kind: string(kind), Parameter: rawParameter, Err: err}
			log.WithError(err).Warn("Filter rejected")
			return err
		}
		next = FilterState{Kind: kind, Filter: f}

	case filter.KindAmountMin:
		minAmount, err := models.ParseDecimal(strings.TrimSpace(rawParameter))
		if err != nil {
			err = &trackererror.ParseError{Field: string(kind), Value: rawParameter, Err: err}
			log.WithError(err).Warn("Filter rejected")
			return err
		}
		if err := validation.ValidateAmount(minAmount); err != nil {
			err = &trackererror.FilterError{Kind: string(kind), Parameter: rawParameter, Err: err}
			log.WithError(err).Warn("Filter rejected")
			return err
		}
		next = FilterState{Kind: kind, Filter: filter.NewAmountFilter(minAmount)}

	default:
		next = FilterState{Kind: filter.KindNone}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = next
	log.Info("Filter applied", logging.F(logging.FieldFilter, next.String()))
	c.refreshLocked()
	return nil
}

// ClearFilter removes the active filter and refreshes the view.
func (c *Controller) ClearFilter() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = FilterState{Kind: filter.KindNone}
	c.logger.Info("Filter cleared", logging.F(logging.FieldOperation, "clear_filter"))
	c.refreshLocked()
}

// ActiveFilter returns the current filter slot.
func (c *Controller) ActiveFilter() FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Visible returns what Refresh would push, without pushing it.
func (c *Controller) Visible() ([]*models.Transaction, decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.computeLocked()
}

// Refresh recomputes the visible transactions and their total and pushes them
// to the view. Calling it repeatedly without changes pushes the same data.
func (c *Controller) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshLocked()
}

func (c *Controller) refreshLocked() {
	visible, total := c.computeLocked()
	c.logger.Debug("Refreshing view",
		logging.F(logging.FieldFilter, c.state.String()),
		logging.F(logging.FieldCount, len(visible)),
		logging.F(logging.FieldTotal, total.StringFixed(2)))
	c.view.Render(visible, total)
}

func (c *Controller) computeLocked() ([]*models.Transaction, decimal.Decimal) {
	visible := filter.Apply(c.state.Filter, c.store.Snapshot())
	return visible, models.Total(visible)
}

type discardView struct{}

func (discardView) Render([]*models.Transaction, decimal.Decimal) {}
