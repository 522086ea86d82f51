package checkout

import (
	"context"
	"net/url"
	"strings"

	"bagstore/internal/logger"
	"bagstore/internal/pricing"
	"bagstore/internal/product"
	"bagstore/internal/selection"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type Service interface {
	Checkout(ctx context.Context, handle string, query url.Values) (*Order, error)
}

type service struct {
	products product.Service
	number   string
	storeURL string
	lang     language.Tag
}

func NewService(products product.Service, opts Options) Service {
	lang, err := language.Parse(opts.Lang)
	if err != nil {
		lang = language.English
	}
	return &service{
		products: products,
		number:   opts.WhatsAppNumber,
		storeURL: opts.StoreURL,
		lang:     lang,
	}
}

// Checkout resolves the page state carried by query (options, image,
// quantity) into a priced order and its wa.me link.
func (s *service) Checkout(ctx context.Context, handle string, query url.Values) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.String("handle", handle),
	)

	if strings.TrimSpace(s.number) == "" {
		log.Error("checkout requested without a whatsapp number")
		return nil, ErrMissingNumber
	}

	p, err := s.products.GetProduct(ctx, handle)
	if err != nil {
		return nil, err
	}

	order := Build(p, query, s.storeURL, s.lang)
	if !order.Enabled {
		log.Info("checkout unavailable for selection", zap.Any("state", order.State.Options))
		return nil, ErrOrderUnavailable
	}
	order.Link = Link(s.number, order.Message)

	log.Info("checkout link built",
		zap.String("variant_id", order.Variant.ID),
		zap.Int("quantity", order.Quote.Quantity),
		zap.String("total", order.Quote.Total.Fixed()),
	)
	return order, nil
}

// Build computes everything in an Order except the link. Enabled is false
// when the state resolves to no variant.
func Build(p *product.Product, query url.Values, storeURL string, lang language.Tag) *Order {
	state := selection.Initial(query, p)
	quantity := pricing.ClampQuantity(query.Get(selection.QuantityKey), p.MinQuantity())

	v, ok := selection.SelectedVariant(p, state)
	if !ok {
		v = nil
	}

	quote := pricing.NewQuote(p, v, quantity)
	productURL := ProductURL(storeURL, p.Handle, selection.Encode(query, state))
	variantLine := VariantLine(p, v, state)

	return &Order{
		Handle:         p.Handle,
		Variant:        v,
		State:          state,
		Quote:          quote,
		VariantOptions: variantLine,
		ProductURL:     productURL,
		Message:        Message(p.Title, variantLine, quote, productURL, lang),
		Enabled:        ok,
	}
}
