package enum

// PaymentMethod represents how a sale was paid
type PaymentMethod string

const (
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodDigital PaymentMethod = "digital"
)

// Valid returns true if the payment method is one of the known methods
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodDigital:
		return true
	}
	return false
}

func (p PaymentMethod) String() string {
	return string(p)
}
