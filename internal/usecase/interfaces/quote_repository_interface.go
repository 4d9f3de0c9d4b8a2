package interfaces

import (
	"context"
	"gadget_garage/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_mock.go

// IQuoteRepository abstracts the "quotes" collection of the document store.
//
// The store owns identity and time:
//   - Create assigns the document id and the server timestamp (CreatedAt)
//   - ListNewestFirst orders by CreatedAt descending
//   - GetByID / Delete report a missing document with a zero value / false

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	ListNewestFirst(ctx context.Context) ([]entities.QuoteRequest, error)
	Delete(ctx context.Context, id string) (bool, error)
}
