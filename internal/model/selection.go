package model

// FilterSelection holds the current state of the five dashboard filters.
// A zero-value field imposes no restriction on that dimension.
type FilterSelection struct {
	ProductType string   `json:"productType"`
	Brand       string   `json:"brand"`
	Products    []string `json:"products"`
	Stores      []string `json:"stores"`
	Customers   []string `json:"customers"`
}

// IsEmpty reports whether no filter is active.
func (s FilterSelection) IsEmpty() bool {
	return s.ProductType == "" && s.Brand == "" &&
		len(s.Products) == 0 && len(s.Stores) == 0 && len(s.Customers) == 0
}
