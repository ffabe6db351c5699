package model

// Ring size bounds for customizable jewellery add-ons.
const (
	MinRingSize = 6
	MaxRingSize = 12
)

// MaxRecipientNameLength caps the gift-letter recipient name.
const MaxRecipientNameLength = 30

// Customization holds optional per-line personalization data.
type Customization struct {
	RingSize                *int   `json:"ringSize,omitempty"`
	PerfumeType             string `json:"perfumeType,omitempty"`
	CustomPerfumeName       string `json:"customPerfumeName,omitempty"`
	LoveLetterEnabled       bool   `json:"loveLetterEnabled,omitempty"`
	LoveLetterRecipientName string `json:"loveLetterRecipientName,omitempty"`
}

// Validate checks the customization bounds.
func (c *Customization) Validate() error {
	if c == nil {
		return nil
	}
	if c.RingSize != nil && (*c.RingSize < MinRingSize || *c.RingSize > MaxRingSize) {
		return ErrInvalidCustomization
	}
	if len(c.LoveLetterRecipientName) > MaxRecipientNameLength {
		return ErrInvalidCustomization
	}
	return nil
}

// CartItem is a product snapshot plus a quantity and optional customization.
// Two cart entries are the same line item only when both the product id and
// the customization are identical.
type CartItem struct {
	Product
	Quantity      int            `json:"quantity"`
	Customization *Customization `json:"customization,omitempty"`
}
