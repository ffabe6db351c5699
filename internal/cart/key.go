package cart

import (
	"fmt"

	"github.com/gosm1/pureperfumes/internal/model"
)

// lineKey builds the canonical identity of a cart line from the product id
// and the customization fields. Two lines merge only when their keys match.
// The key is computed once per mutation instead of re-serialising the
// customization on every comparison.
func lineKey(productID string, c *model.Customization) string {
	if c == nil {
		return productID + "|"
	}

	ringSize := ""
	if c.RingSize != nil {
		ringSize = fmt.Sprintf("%d", *c.RingSize)
	}

	return fmt.Sprintf("%s|%s;%s;%s;%t;%s",
		productID,
		ringSize,
		c.PerfumeType,
		c.CustomPerfumeName,
		c.LoveLetterEnabled,
		c.LoveLetterRecipientName,
	)
}
