package service

import (
	"context"
	"strconv"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/georgeyunson20gwaposodsako/BSIT-2D-YUNSON-GEORGE-PC-PARTS-RETAIL-SYSTEM/internal/models"
)

type PartStore interface {
	ListParts(ctx context.Context) ([]models.Part, error)
	GetPart(ctx context.Context, id int64) (*models.Part, error)
	CreatePart(ctx context.Context, part *models.Part) (int64, error)
	UpdatePart(ctx context.Context, part *models.Part) error
	DeletePart(ctx context.Context, id int64) error
}

// PartInput is the raw form submission for a part.
type PartInput struct {
	Name     string `validate:"required,max=200"`
	Category string `validate:"required,max=100"`
	Price    string `validate:"required"`
	// Version is the version the editor loaded; empty disables the check.
	Version string
}

type Catalog struct {
	store    PartStore
	validate *validatorv10.Validate
}

func NewCatalog(store PartStore) *Catalog {
	return &Catalog{store: store, validate: newValidator()}
}

func (c *Catalog) ListParts(ctx context.Context) ([]models.Part, error) {
	return c.store.ListParts(ctx)
}

func (c *Catalog) GetPart(ctx context.Context, id string) (*models.Part, error) {
	partID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return c.store.GetPart(ctx, partID)
}

func (c *Catalog) CreatePart(ctx context.Context, in PartInput) (int64, error) {
	part, err := c.parse(in)
	if err != nil {
		return 0, err
	}
	return c.store.CreatePart(ctx, part)
}

func (c *Catalog) UpdatePart(ctx context.Context, id string, in PartInput) error {
	partID, err := parseID(id)
	if err != nil {
		return err
	}
	part, err := c.parse(in)
	if err != nil {
		return err
	}
	part.ID = partID
	return c.store.UpdatePart(ctx, part)
}

// DeletePart removes the part; unknown ids succeed without effect.
func (c *Catalog) DeletePart(ctx context.Context, id string) error {
	partID, err := parseID(id)
	if err != nil {
		return err
	}
	return c.store.DeletePart(ctx, partID)
}

func (c *Catalog) parse(in PartInput) (*models.Part, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Price = strings.TrimSpace(in.Price)

	if err := validate(c.validate, in); err != nil {
		return nil, err
	}

	price, err := ParsePrice(in.Price)
	if err != nil {
		return nil, err
	}

	part := &models.Part{Name: in.Name, Category: in.Category, Price: price}
	if v := strings.TrimSpace(in.Version); v != "" {
		version, err := strconv.Atoi(v)
		if err != nil || version < 1 {
			return nil, &ValidationError{Fields: map[string]string{"version": "Invalid version."}}
		}
		part.Version = version
	}
	return part, nil
}

// MaxPrice keeps every accepted price exactly representable in the REAL column.
var MaxPrice = decimal.RequireFromString("999999999999.99")

// ParsePrice accepts a non-negative amount with at most two decimal places,
// up to MaxPrice.
func ParsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, priceError("Invalid price format.")
	}
	if price.IsNegative() {
		return decimal.Zero, priceError("Price must not be negative.")
	}
	if price.GreaterThan(MaxPrice) {
		return decimal.Zero, priceError("Price must not exceed " + MaxPrice.StringFixed(2) + ".")
	}
	if !price.Equal(price.Round(2)) {
		return decimal.Zero, priceError("Price must have at most two decimal places.")
	}
	return price, nil
}

func priceError(msg string) error {
	return &ValidationError{Fields: map[string]string{"price": msg}}
}
