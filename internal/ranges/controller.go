package ranges

import (
	"io"
	"log/slog"

	"github.com/jask/bitbuddy/internal/bits"
)

// Controller is the single owner of a Store. An input change is committed
// in two ordered phases: the raw input first, then the binary expansion
// derived from it. Both happen before SetInput returns.
type Controller struct {
	store *Store
	parse func(string) string
	log   *slog.Logger
}

func NewController(store *Store, log *slog.Logger) *Controller {
	if store == nil {
		store = NewStore()
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{store: store, parse: bits.ParseToBinary64, log: log}
}

func (c *Controller) State() State { return c.store.State() }

func (c *Controller) Policy() OverlapPolicy { return c.store.Policy() }

// SetInput replaces the input and recomputes the binary expansion.
// Committed ranges are not revisited and may no longer match the value.
func (c *Controller) SetInput(value string) {
	c.store.SetInput(value)
	binary := c.parse(value)
	c.store.SetBinary(binary)
	c.log.Debug("input committed", "input", value, "valid", binary != "")
}

func (c *Controller) ClearInput() {
	c.SetInput("")
}

func (c *Controller) AddRange(start, end int) (Range, error) {
	return c.store.AddRange(start, end)
}

func (c *Controller) ResetRanges() {
	c.store.ResetRanges()
}

func (c *Controller) UndoLastRange() (Range, bool) {
	return c.store.UndoLastRange()
}
