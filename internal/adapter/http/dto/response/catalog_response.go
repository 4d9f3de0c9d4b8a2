package response

import (
	"gadget_garage/internal/domain/entities"
	"gadget_garage/internal/usecase"
)

type NavLinkResponse struct {
	Label string `json:"label"`
	Route string `json:"route"`
}

type HomeResponse struct {
	ShopName   string                   `json:"shopName"`
	Tagline    string                   `json:"tagline"`
	About      string                   `json:"about"`
	Highlights []entities.HomeHighlight `json:"highlights"`
	Links      []NavLinkResponse        `json:"links"`
}

type ServicesResponse struct {
	Services []entities.ServiceOffering `json:"services"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func FromHome(h usecase.HomeView) HomeResponse {
	links := make([]NavLinkResponse, 0, len(h.Links))
	for _, l := range h.Links {
		links = append(links, NavLinkResponse{Label: l.Label, Route: l.Route})
	}
	return HomeResponse{
		ShopName:   h.ShopName,
		Tagline:    h.Tagline,
		About:      h.About,
		Highlights: h.Highlights,
		Links:      links,
	}
}
