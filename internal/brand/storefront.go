// Package brand is the brand-partner portal: storefront editor, analytics
// and warehouse inventory.
package brand

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/wichananm65/stylesphere-storefront/internal/user"
)

var ErrProductNotFound = errors.New("brand product not found")

// ValidationError lists the offending fields of a submitted form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("invalid fields: %s", strings.Join(keys, ", "))
}

// Profile is the public face of a brand on the marketplace.
type Profile struct {
	BrandName           string `json:"brandName"`
	Tagline             string `json:"tagline"`
	Description         string `json:"description"`
	HeroImage           string `json:"heroImage"`
	LogoURL             string `json:"logoUrl"`
	Website             string `json:"website"`
	Instagram           string `json:"instagram"`
	SustainabilityScore int    `json:"sustainabilityScore"`
}

type InfluencerStatus string

const (
	InfluencerActive  InfluencerStatus = "Active"
	InfluencerPending InfluencerStatus = "Pending"
)

type Influencer struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Followers string           `json:"followers"`
	Status    InfluencerStatus `json:"status"`
}

// DefaultProfile is what a partner sees before editing anything.
func DefaultProfile(u user.User) Profile {
	name := u.BrandName
	if name == "" {
		name = "My Brand"
	}
	return Profile{
		BrandName:           name,
		Tagline:             "Luxury African Fashion",
		Description:         "We create timeless pieces that celebrate African heritage and modern elegance.",
		HeroImage:           "https://images.unsplash.com/photo-1697924293303-34488b60bf36?w=1080",
		Website:             "https://mybrand.com",
		Instagram:           "@mybrand",
		SustainabilityScore: 85,
	}
}

func DefaultInfluencers() []Influencer {
	return []Influencer{
		{ID: "1", Name: "@fashionista_ada", Followers: "250K", Status: InfluencerActive},
		{ID: "2", Name: "@style_queen_zara", Followers: "180K", Status: InfluencerPending},
	}
}

func validateProfile(p Profile) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(p.BrandName) == "" {
		errs["brandName"] = "brandName is required"
	}
	if p.SustainabilityScore < 0 || p.SustainabilityScore > 100 {
		errs["sustainabilityScore"] = "sustainabilityScore must be between 0 and 100"
	}
	return errs
}

type page struct {
	profile     Profile
	influencers []Influencer
}

// Storefronts keeps one editable storefront per partner, keyed by email.
type Storefronts struct {
	mu    sync.Mutex
	pages map[string]*page
}

func NewStorefronts() *Storefronts {
	return &Storefronts{pages: make(map[string]*page)}
}

func (s *Storefronts) pageFor(u user.User) *page {
	key := strings.ToLower(u.Email)
	p, ok := s.pages[key]
	if !ok {
		p = &page{profile: DefaultProfile(u), influencers: DefaultInfluencers()}
		s.pages[key] = p
	}
	return p
}

func (s *Storefronts) Profile(u user.User) Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pageFor(u).profile
}

func (s *Storefronts) SaveProfile(u user.User, next Profile) (Profile, error) {
	if errs := validateProfile(next); len(errs) > 0 {
		return Profile{}, &ValidationError{Fields: errs}
	}
	next.BrandName = strings.TrimSpace(next.BrandName)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageFor(u).profile = next
	return next, nil
}

func (s *Storefronts) Influencers(u user.User) []Influencer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.pageFor(u).influencers)
}

// AddInfluencer starts a collaboration; new ones are Pending until accepted.
func (s *Storefronts) AddInfluencer(u user.User, in Influencer) (Influencer, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return Influencer{}, &ValidationError{Fields: map[string]string{"name": "name is required"}}
	}
	if !strings.HasPrefix(in.Name, "@") {
		in.Name = "@" + in.Name
	}
	in.ID = uuid.NewString()
	if in.Status != InfluencerActive {
		in.Status = InfluencerPending
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.pageFor(u)
	p.influencers = append(p.influencers, in)
	return in, nil
}
