package wire

import (
	"hotel-management/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Routes below are mounted inside the authenticated group

func wireCustomer(r chi.Router, h *adaptor.CustomerHandler) {
	r.Route("/api/customers", func(r chi.Router) {
		r.Get("/", h.List) // GET /api/customers?search=&page=1&per_page=10
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete) // cascades to reservations
	})
}

func wireRoom(r chi.Router, h *adaptor.RoomHandler) {
	r.Route("/api/rooms", func(r chi.Router) {
		r.Get("/", h.List) // GET /api/rooms?room_type=Deluxe&available=true&search=10
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

func wireReservation(r chi.Router, h *adaptor.ReservationHandler) {
	r.Route("/api/reservations", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Delete("/{id}", h.Delete)

		// selection boxes of the booking form
		r.Get("/options/rooms", h.AvailableRooms)
		r.Get("/options/customers", h.CustomerNames)
	})
}

func wirePayment(r chi.Router, h *adaptor.PaymentHandler) {
	r.Route("/api/payments", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Record)
		r.Delete("/{id}", h.Delete)
	})
}

func wireStaff(r chi.Router, h *adaptor.StaffHandler) {
	r.Route("/api/staff", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
