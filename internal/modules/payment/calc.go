package payment

import "strings"

const (
	// ServiceFee is the flat per-booking fee in whole rupees.
	ServiceFee = 250
	// PromoCode is the only code carrying a discount.
	PromoCode = "luxestay"
	// PromoDiscount is the flat discount PromoCode grants.
	PromoDiscount = 500
)

// Total is the derived payment breakdown. It is never stored; callers
// recompute it from the base price and the current promo code.
type Total struct {
	Base       int64 `json:"base"`
	ServiceFee int64 `json:"serviceFee"`
	Tax        int64 `json:"tax"`
	Discount   int64 `json:"discount"`
	Total      int64 `json:"total"`
}

// Discount returns 500 for the known promo code, case-insensitively,
// and 0 for anything else. Always derived from the current code value,
// so repeated applications never accumulate.
func Discount(code string) int64 {
	if strings.EqualFold(strings.TrimSpace(code), PromoCode) {
		return PromoDiscount
	}
	return 0
}

// Quote derives the payment total:
// base + 250 + floor(base*0.18) - discount(code).
func Quote(base int64, promoCode string) Total {
	tax := base * 18 / 100
	discount := Discount(promoCode)
	return Total{
		Base:       base,
		ServiceFee: ServiceFee,
		Tax:        tax,
		Discount:   discount,
		Total:      base + ServiceFee + tax - discount,
	}
}
