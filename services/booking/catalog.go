package booking

// DefaultSlotLabels are the four bookable windows, in display order.
var DefaultSlotLabels = []string{
	"09:30-10:30",
	"10:30-11:30",
	"13:30-14:30",
	"14:30-15:30",
}

// SlotCatalog is the fixed, ordered set of bookable time slots and the
// capacity they all share. It is configuration handed in at construction and
// never changes at runtime.
type SlotCatalog struct {
	labels   []string
	capacity int
}

func NewSlotCatalog(labels []string, capacity int) SlotCatalog {
	copied := make([]string, len(labels))
	copy(copied, labels)
	return SlotCatalog{labels: copied, capacity: capacity}
}

// DefaultCatalog builds the deployment's standard four-slot catalog.
func DefaultCatalog(capacity int) SlotCatalog {
	return NewSlotCatalog(DefaultSlotLabels, capacity)
}

// Labels returns the slot labels in catalog order.
func (c SlotCatalog) Labels() []string {
	copied := make([]string, len(c.labels))
	copy(copied, c.labels)
	return copied
}

func (c SlotCatalog) Capacity() int {
	return c.capacity
}

func (c SlotCatalog) IsKnownSlot(label string) bool {
	for _, l := range c.labels {
		if l == label {
			return true
		}
	}
	return false
}
