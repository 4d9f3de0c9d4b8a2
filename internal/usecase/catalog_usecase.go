package usecase

import "gadget_garage/internal/domain/entities"

// NavLink points the client at another screen's resource.
type NavLink struct {
	Label string
	Route string
}

type HomeView struct {
	ShopName   string
	Tagline    string
	About      string
	Highlights []entities.HomeHighlight
	Links      []NavLink
}

type ICatalogUseCase interface {
	Home() HomeView
	Services() []entities.ServiceOffering
}

type CatalogUseCase struct{}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase() *CatalogUseCase {
	return &CatalogUseCase{}
}

func (u *CatalogUseCase) Home() HomeView {
	return HomeView{
		ShopName:   entities.ShopName,
		Tagline:    entities.ShopTagline,
		About:      entities.ShopAbout,
		Highlights: entities.HomeHighlights,
		Links: []NavLink{
			{Label: "Our Services", Route: "/v1/services"},
			{Label: "Get Free Quote", Route: "/v1/quotes"},
			{Label: "Book Appointment", Route: "/v1/appointments"},
			{Label: "Message Us", Route: "/v1/chats"},
			{Label: "Make Payment", Route: "/v1/payments"},
		},
	}
}

func (u *CatalogUseCase) Services() []entities.ServiceOffering {
	return entities.ServiceOfferings
}
