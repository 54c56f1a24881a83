package entity

// AnonymousOwner is the owner key of the cart kept before anyone signs in.
const AnonymousOwner = "anonymous"

// MaxLineQuantity caps the quantity of a single line. Adds beyond it saturate.
const MaxLineQuantity = 9999

// CartLine is one product entry in a cart. Quantity is always >= 1 inside a Cart.
type CartLine struct {
	ProductID int64    `json:"productId"`
	Quantity  int      `json:"quantity"`
	Name      string   `json:"name,omitempty"`
	Price     *float64 `json:"price,omitempty"`
}

// Cart is an ordered list of lines with unique product identifiers.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// NewCart builds a cart from persisted lines, dropping non-positive quantities
// and folding duplicate product identifiers into the first occurrence.
func NewCart(lines []CartLine) Cart {
	var cart Cart
	for _, line := range lines {
		cart.Add(line)
	}

	return cart
}

// Add increments an existing line by line.Quantity or appends a new line.
// Non-empty Name/Price on line refresh the cached display fields.
// Non-positive quantities are ignored; the result is capped at MaxLineQuantity.
func (c *Cart) Add(line CartLine) {
	if line.Quantity <= 0 {
		return
	}

	if idx := c.indexOf(line.ProductID); idx >= 0 {
		existing := &c.Lines[idx]
		if line.Quantity > MaxLineQuantity-existing.Quantity {
			existing.Quantity = MaxLineQuantity
		} else {
			existing.Quantity += line.Quantity
		}
		if line.Name != "" {
			existing.Name = line.Name
		}
		if line.Price != nil {
			existing.Price = clonePrice(line.Price)
		}

		return
	}

	line.Quantity = min(line.Quantity, MaxLineQuantity)
	line.Price = clonePrice(line.Price)
	c.Lines = append(c.Lines, line)
}

// SetQuantity sets the absolute quantity of an existing line.
// A quantity <= 0 removes the line; unknown products are a no-op.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)

		return
	}

	if idx := c.indexOf(productID); idx >= 0 {
		c.Lines[idx].Quantity = min(quantity, MaxLineQuantity)
	}
}

// Remove deletes the line for productID if present.
func (c *Cart) Remove(productID int64) {
	if idx := c.indexOf(productID); idx >= 0 {
		c.Lines = append(c.Lines[:idx], c.Lines[idx+1:]...)
	}
}

// Quantity returns the quantity held for productID, zero when absent.
func (c Cart) Quantity(productID int64) int {
	if idx := c.indexOf(productID); idx >= 0 {
		return c.Lines[idx].Quantity
	}

	return 0
}

// TotalItems is the sum of all line quantities.
func (c Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}

	return total
}

// TotalPrice sums quantity * cached price; lines without a cached price count as zero.
func (c Cart) TotalPrice() float64 {
	total := 0.0
	for _, line := range c.Lines {
		if line.Price != nil {
			total += *line.Price * float64(line.Quantity)
		}
	}

	return total
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// ProductIDs returns the product identifiers in cart order.
func (c Cart) ProductIDs() []int64 {
	ids := make([]int64, len(c.Lines))
	for i, line := range c.Lines {
		ids[i] = line.ProductID
	}

	return ids
}

// Quantities returns the quantities aligned with ProductIDs.
func (c Cart) Quantities() []int {
	quantities := make([]int, len(c.Lines))
	for i, line := range c.Lines {
		quantities[i] = line.Quantity
	}

	return quantities
}

// Clone returns a deep copy of the cart.
func (c Cart) Clone() Cart {
	if c.Lines == nil {
		return Cart{}
	}
	lines := make([]CartLine, len(c.Lines))
	for i, line := range c.Lines {
		line.Price = clonePrice(line.Price)
		lines[i] = line
	}

	return Cart{Lines: lines}
}

func (c Cart) indexOf(productID int64) int {
	for i, line := range c.Lines {
		if line.ProductID == productID {
			return i
		}
	}

	return -1
}

func clonePrice(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}

// CartTransition describes what happened to the active cart when its owner changed.
type CartTransition int

const (
	// TransitionNone means the owner did not change.
	TransitionNone CartTransition = iota
	// TransitionAdopted means a cart already persisted for the user became active; the anonymous cart was left alone.
	TransitionAdopted
	// TransitionMigrated means the anonymous cart moved under the user's key and the anonymous entry was deleted.
	TransitionMigrated
	// TransitionEmpty means neither the user nor the anonymous owner had a cart.
	TransitionEmpty
	// TransitionSignedOut means the active cart switched back to the anonymous owner.
	TransitionSignedOut
)

// String returns a stable name for logs.
func (t CartTransition) String() string {
	switch t {
	case TransitionNone:
		return "none"
	case TransitionAdopted:
		return "adopted"
	case TransitionMigrated:
		return "migrated"
	case TransitionEmpty:
		return "empty"
	case TransitionSignedOut:
		return "signed_out"
	default:
		return "unknown"
	}
}
