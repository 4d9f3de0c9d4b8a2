package entities

// PaymentMethod is a payment option shown on the payment screen.
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var PaymentMethods = []PaymentMethod{
	{ID: "card", Name: "Credit/Debit Card", Icon: "💳"},
	{ID: "venmo", Name: "Venmo", Icon: "📱"},
	{ID: "cashapp", Name: "Cash App", Icon: "💰"},
	{ID: "zelle", Name: "Zelle", Icon: "🏦"},
	{ID: "paypal", Name: "PayPal", Icon: "🅿️"},
	{ID: "cash", Name: "Cash", Icon: "💵"},
}

var QuickAmounts = []string{"25", "50", "100", "150", "200", "300"}

// FindPaymentMethod looks a method up by id.
func FindPaymentMethod(id string) (PaymentMethod, bool) {
	for _, m := range PaymentMethods {
		if m.ID == id {
			return m, true
		}
	}
	return PaymentMethod{}, false
}

// PaymentIntent is what the customer entered on the payment screen.
// It is never persisted and never sent to a processor.
type PaymentIntent struct {
	Method      string `json:"method"`
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
}
