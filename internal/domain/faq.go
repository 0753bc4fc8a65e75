package domain

// FAQItem is a single question/answer record.
type FAQItem struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Catalog is an immutable, ordered list of FAQ items. Order is display order.
type Catalog struct {
	items []FAQItem
}

// NewCatalog copies items into a new Catalog.
func NewCatalog(items []FAQItem) Catalog {
	cp := make([]FAQItem, len(items))
	copy(cp, items)
	return Catalog{items: cp}
}

// Len returns the number of items.
func (c Catalog) Len() int {
	return len(c.items)
}

// Item returns the item at index i. It panics if i is out of range, like a slice.
func (c Catalog) Item(i int) FAQItem {
	return c.items[i]
}

// Items returns a copy of all items.
func (c Catalog) Items() []FAQItem {
	cp := make([]FAQItem, len(c.items))
	copy(cp, c.items)
	return cp
}
