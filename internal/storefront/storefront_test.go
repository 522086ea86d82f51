package storefront

import (
	"context"
	"net/url"
	"testing"

	"bagstore/internal/money"
	"bagstore/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetProduct(ctx context.Context, handle string) (*product.Product, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, opts product.ListOptions) ([]*product.Product, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductService) Recommendations(ctx context.Context, handle string) ([]*product.Product, error) {
	args := m.Called(ctx, handle)
	return args.Get(0).([]*product.Product), args.Error(1)
}

func usd(a string) money.Money { return money.MustParse(a, "USD") }

func potli() *product.Product {
	opt := func(pairs ...string) []product.SelectedOption {
		var out []product.SelectedOption
		for i := 0; i+1 < len(pairs); i += 2 {
			out = append(out, product.SelectedOption{Name: pairs[i], Value: pairs[i+1]})
		}
		return out
	}
	return &product.Product{
		Handle: "silk-potli",
		Title:  "Silk Potli",
		Options: []product.Option{
			{Name: "Color", Values: []string{"Red", "Gold"}},
			{Name: "Size", Values: []string{"S", "L"}},
		},
		Variants: []product.Variant{
			{ID: "red-s", AvailableForSale: true, SelectedOptions: opt("Color", "Red", "Size", "S"), Price: usd("10.00")},
			{ID: "red-l", AvailableForSale: false, SelectedOptions: opt("Color", "Red", "Size", "L"), Price: usd("10.00")},
			{ID: "gold-l", AvailableForSale: true, SelectedOptions: opt("Color", "Gold", "Size", "L"), Price: usd("10.00")},
		},
		PriceRange: product.PriceRange{MinVariantPrice: usd("10.00"), MaxVariantPrice: usd("10.00")},
		PricingTiers: []product.PriceTier{
			{MinQuantity: 1, UnitPrice: usd("10.00")},
			{MinQuantity: 50, UnitPrice: usd("8.00")},
			{MinQuantity: 100, UnitPrice: usd("6.50")},
		},
		MinAllowedQuantity: 10,
		Reviews: []product.Review{
			{ReviewRating: product.ReviewRating{RatingValue: 5}},
			{ReviewRating: product.ReviewRating{RatingValue: 4}},
		},
	}
}

func TestBuildPage(t *testing.T) {
	q := url.Values{"color": {"Red"}, "size": {"S"}, "quantity": {"75"}}

	page := BuildPage(potli(), q, language.English)

	require.True(t, page.CanOrder)
	assert.Equal(t, "red-s", page.Variant.ID)
	assert.Equal(t, 75, page.Quote.Quantity)
	assert.Equal(t, "$8.00", page.Display.UnitPrice)
	assert.Equal(t, "$600.00", page.Display.Total)
	assert.Equal(t, "$150.00", page.Display.Savings)
	assert.Equal(t, "$6.50", page.Display.FromPrice)
	assert.Equal(t, "4.5", page.Rating.Average)
	assert.False(t, page.SelectorHidden)
	assert.Equal(t, "color=Red&quantity=75&size=S", page.Query)

	require.Len(t, page.Options, 2)
	size := page.Options[1]
	assert.Equal(t, "Size", size.Option)
	assert.True(t, size.Values[0].Selectable)
	assert.True(t, size.Values[0].Active)
	assert.False(t, size.Values[1].Selectable, "Red/L is sold out")
}

func TestBuildPage_IncompleteSelection(t *testing.T) {
	page := BuildPage(potli(), url.Values{"color": {"Gold"}, "quantity": {"abc"}}, language.English)

	assert.False(t, page.CanOrder)
	assert.Nil(t, page.Variant)
	assert.Equal(t, 10, page.Quote.Quantity)
	assert.Empty(t, page.Display.Savings)
}

func TestApplySelection(t *testing.T) {
	res := ApplySelection(potli(), url.Values{"color": {"Red"}, "utm_source": {"ig"}}, map[string]string{"Color": "Gold", "size": "L", "image": "2"})

	assert.Equal(t, map[string]string{"color": "Gold", "size": "L", "utm_source": "ig"}, res.State.Options)
	assert.Equal(t, "2", res.State.Image)
	assert.Equal(t, "color=Gold&image=2&size=L&utm_source=ig", res.Query)
	require.True(t, res.CanOrder)
	assert.Equal(t, "gold-l", res.Variant.ID)
}

func TestApplySelection_QuantityStaysInQuery(t *testing.T) {
	res := ApplySelection(potli(), url.Values{"color": {"Red"}}, map[string]string{"quantity": "5"})

	assert.Equal(t, map[string]string{"color": "Red"}, res.State.Options)
	assert.Equal(t, "color=Red", res.Query)
}

func TestApplySelection_ColorChangeResetsImage(t *testing.T) {
	p := potli()
	p.ImagesByColor = map[string][]string{"Gold": {"gold-1.jpg", "gold-2.jpg"}}
	query := url.Values{"color": {"Red"}, "image": {"3"}}

	res := ApplySelection(p, query, map[string]string{"color": "Gold"})
	assert.Equal(t, "0", res.State.Image)
	assert.Equal(t, "color=Gold&image=0", res.Query)
	require.Len(t, res.Gallery.Images, 2)
	assert.Equal(t, "gold-1.jpg", res.Gallery.Images[0].URL)

	res = ApplySelection(p, query, map[string]string{"size": "S"})
	assert.Equal(t, "3", res.State.Image, "same color keeps the image")
}

func TestBuildGallery(t *testing.T) {
	p := potli()
	p.Images = []product.Image{{URL: "a.jpg"}, {URL: "b.jpg"}, {URL: "c.jpg"}}
	p.ImagesByColor = map[string][]string{"Gold": {"gold-1.jpg", "gold-2.jpg"}}

	tests := []struct {
		name      string
		query     url.Values
		wantFirst string
		wantLen   int
		wantIndex int
	}{
		{name: "no color", query: url.Values{"image": {"2"}}, wantFirst: "a.jpg", wantLen: 3, wantIndex: 2},
		{name: "color with images", query: url.Values{"color": {"Gold"}, "image": {"1"}}, wantFirst: "gold-1.jpg", wantLen: 2, wantIndex: 1},
		{name: "color without images", query: url.Values{"color": {"Red"}}, wantFirst: "a.jpg", wantLen: 3, wantIndex: 0},
		{name: "index past the color list", query: url.Values{"color": {"Gold"}, "image": {"2"}}, wantFirst: "gold-1.jpg", wantLen: 2, wantIndex: 0},
		{name: "garbage index", query: url.Values{"image": {"x"}}, wantFirst: "a.jpg", wantLen: 3, wantIndex: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := BuildPage(p, tt.query, language.English)

			require.Len(t, page.Gallery.Images, tt.wantLen)
			assert.Equal(t, tt.wantFirst, page.Gallery.Images[0].URL)
			assert.Equal(t, tt.wantIndex, page.Gallery.Index)
		})
	}
}

func TestService(t *testing.T) {
	products := new(MockProductService)
	products.On("GetProduct", mock.Anything, "silk-potli").Return(potli(), nil)
	products.On("GetProduct", mock.Anything, "missing").Return(nil, product.ErrProductNotFound)

	svc := NewService(products, "en-US")
	ctx := context.Background()

	quote, err := svc.Quote(ctx, "silk-potli", url.Values{"quantity": {"120"}})
	require.NoError(t, err)
	assert.Equal(t, "6.50", quote.UnitPrice.Fixed())
	assert.Equal(t, "780.00", quote.Total.Fixed())

	res, err := svc.Select(ctx, "silk-potli", nil, map[string]string{"color": "Red", "size": "S"})
	require.NoError(t, err)
	assert.True(t, res.CanOrder)

	_, err = svc.ProductPage(ctx, "missing", nil)
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestNewService_BadLanguageFallsBack(t *testing.T) {
	svc := NewService(new(MockProductService), "not a tag!!").(*service)
	assert.Equal(t, language.English, svc.lang)
}
