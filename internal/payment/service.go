// AngelaMos | 2026
// service.go

package payment

import (
	"strings"

	"github.com/google/uuid"

	"github.com/carterperez-dev/trackflow/internal/core"
)

// Purchasable catalog. Tiers upgrade the account, packs top up credits.
var catalog = map[string]Product{
	"indie":     {ID: "indie", Kind: KindTier, Label: "Indie tier"},
	"pro":       {ID: "pro", Kind: KindTier, Label: "Pro tier"},
	"credits_5": {ID: "credits_5", Kind: KindCreditPack, Label: "5 submission credits"},
	"credits_20": {
		ID:    "credits_20",
		Kind:  KindCreditPack,
		Label: "20 submission credits",
	},
}

const (
	KindTier       = "tier"
	KindCreditPack = "credit_pack"
)

type Product struct {
	ID    string
	Kind  string
	Label string
}

type Service struct {
	enabled        bool
	publishableKey string
}

func NewService(enabled bool, publishableKey string) *Service {
	return &Service{enabled: enabled, publishableKey: publishableKey}
}

func (s *Service) PublishableKey() string {
	return s.publishableKey
}

// CreateCheckout produces a mock Stripe checkout session for the given
// product. No real Stripe call is made; the session id and URL are
// fabricated in the shape real ones take.
func (s *Service) CreateCheckout(productID string) (*CheckoutSession, error) {
	if !s.enabled {
		return nil, core.PaymentsDisabledError()
	}

	product, ok := catalog[strings.ToLower(strings.TrimSpace(productID))]
	if !ok {
		return nil, core.ValidationError("Unknown product")
	}

	sessionID := "cs_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	return &CheckoutSession{
		SessionID:   sessionID,
		CheckoutURL: "https://checkout.stripe.example/c/pay/" + sessionID,
		ProductID:   product.ID,
		ProductKind: product.Kind,
	}, nil
}
