// Package tracking renders the shipment timeline and map for an order.
package tracking

import (
	"time"

	"github.com/wichananm65/stylesphere-storefront/internal/notification"
	"github.com/wichananm65/stylesphere-storefront/internal/order"
)

type View string

const (
	ViewList View = "list"
	ViewMap  View = "map"
)

func ParseView(s string) View {
	if View(s) == ViewMap {
		return ViewMap
	}
	return ViewList
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Event struct {
	Timestamp   string       `json:"timestamp"`
	Status      string       `json:"status"`
	Location    string       `json:"location"`
	Description string       `json:"description"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Stage is one step of the Processing, Shipped, Delivered progress bar.
type Stage struct {
	Name   order.Status `json:"name"`
	Active bool         `json:"active"`
}

type MapView struct {
	Current Event         `json:"current"`
	Recent  []Event       `json:"recent"`
	Route   []Coordinates `json:"route"`
}

type Tracking struct {
	Order     order.Order `json:"order"`
	View      View        `json:"view"`
	Stages    []Stage     `json:"stages"`
	Events    []Event     `json:"events,omitempty"`
	Map       *MapView    `json:"map,omitempty"`
	EmailSent bool        `json:"emailSent"`
}

var stages = []order.Status{order.StatusProcessing, order.StatusShipped, order.StatusDelivered}

// DefaultEvents is the carrier feed every order is tracked against, newest first.
func DefaultEvents() []Event {
	return []Event{
		{Timestamp: "2026-02-10 10:30 AM", Status: "Delivered", Location: "New York, NY, USA", Description: "Package delivered successfully", Coordinates: &Coordinates{Lat: 40.7128, Lng: -74.0060}},
		{Timestamp: "2026-02-10 08:15 AM", Status: "Out for Delivery", Location: "New York, NY, USA", Description: "Package is out for delivery", Coordinates: &Coordinates{Lat: 40.7580, Lng: -73.9855}},
		{Timestamp: "2026-02-09 06:45 PM", Status: "In Transit", Location: "Newark, NJ, USA", Description: "Package arrived at local facility", Coordinates: &Coordinates{Lat: 40.7357, Lng: -74.1724}},
		{Timestamp: "2026-02-09 02:20 AM", Status: "International Hub", Location: "London, UK", Description: "Cleared customs and in transit", Coordinates: &Coordinates{Lat: 51.5074, Lng: -0.1278}},
		{Timestamp: "2026-02-08 02:20 PM", Status: "Shipped", Location: "Lagos, Nigeria", Description: "Package shipped from warehouse", Coordinates: &Coordinates{Lat: 6.5244, Lng: 3.3792}},
		{Timestamp: "2026-02-08 09:00 AM", Status: "Processing", Location: "Lagos, Nigeria", Description: "Order confirmed and being prepared", Coordinates: &Coordinates{Lat: 6.5244, Lng: 3.3792}},
	}
}

type Service struct {
	events    []Event
	emailSent *notification.Flash
}

func NewService(events []Event, resendHold time.Duration) *Service {
	return &Service{events: events, emailSent: notification.NewFlash(resendHold)}
}

func sentKey(sessionID, orderID string) string {
	return sessionID + "/" + orderID
}

// Track builds the tracking screen for o in the requested view.
func (s *Service) Track(sessionID string, o order.Order, view View) Tracking {
	current := 0
	for i, st := range stages {
		if st == o.Status {
			current = i
		}
	}
	t := Tracking{
		Order:     o,
		View:      view,
		Stages:    make([]Stage, 0, len(stages)),
		EmailSent: s.emailSent.Active(sentKey(sessionID, o.ID)),
	}
	for i, st := range stages {
		t.Stages = append(t.Stages, Stage{Name: st, Active: i <= current})
	}

	if view != ViewMap {
		t.Events = s.events
		return t
	}
	if len(s.events) == 0 {
		return t
	}
	m := &MapView{
		Current: s.events[0],
		Recent:  s.events[:min(3, len(s.events))],
	}
	// route runs from origin to destination
	for i := len(s.events) - 1; i >= 0; i-- {
		if c := s.events[i].Coordinates; c != nil {
			m.Route = append(m.Route, *c)
		}
	}
	t.Map = m
	return t
}

// ResendEmail raises the "email sent" indicator for the order. It reports
// false while a previous resend is still showing.
func (s *Service) ResendEmail(sessionID string, o order.Order) bool {
	_, raised := s.emailSent.Raise(sentKey(sessionID, o.ID))
	return raised
}
