package router

import (
	"braidr/internal/handlers/booking"
	"braidr/internal/handlers/catalog"
	"braidr/internal/handlers/stylist"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Stylist stylist.Handler
	Catalog catalog.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Stylist.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
