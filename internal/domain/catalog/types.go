package catalog

// Brand is a product brand as listed by the catalog endpoints.
type Brand struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
}

// Product is a catalog product.
type Product struct {
	ID          string `json:"id"`
	BrandID     string `json:"brandId"`
	Name        string `json:"name"`
	ModelNumber string `json:"modelNumber,omitempty"`
	Category    string `json:"category,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Variant is a purchasable option of a product (typically a size).
// LowestPrice is nil when no selling bid is currently open, in which case the
// variant cannot be bought.
type Variant struct {
	ID          string `json:"id"`
	Label       string `json:"option"`
	LowestPrice *int64 `json:"lowestPrice"`
	LowestBidID string `json:"lowestBidId,omitempty"`
}

// Buyable reports whether the variant has an open ask to buy against.
func (v Variant) Buyable() bool {
	return v.LowestPrice != nil
}

// BidRef returns the selling-bid reference an order should be created
// against: the lowest open bid when known, else the variant itself.
func (v Variant) BidRef() string {
	if v.LowestBidID != "" {
		return v.LowestBidID
	}
	return v.ID
}

// Page is one page of a paginated catalog listing.
type Page[T any] struct {
	Content       []T `json:"content"`
	Number        int `json:"number"`
	TotalPages    int `json:"totalPages"`
	TotalElements int `json:"totalElements"`
}
