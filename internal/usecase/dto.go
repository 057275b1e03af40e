package usecase

import (
	"strings"

	"tourism-service/internal/domain/entity"
)

// ContactInput is the public contact form
type ContactInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

func (in *ContactInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Message = strings.TrimSpace(in.Message)
}

// CustomTourInput is the public custom tour request form
type CustomTourInput struct {
	StartDate         string   `json:"startDate" validate:"required"`
	Duration          FlexInt  `json:"duration" validate:"min=1,max=365"`
	NumberOfTravelers FlexInt  `json:"numberOfTravelers" validate:"min=1,max=100"`
	AccommodationType string   `json:"accommodationType" validate:"required,accommodation"`
	Destinations      []string `json:"destinations" validate:"required,min=1,dive,required"`
	BudgetRange       string   `json:"budgetRange" validate:"required"`
	Comments          string   `json:"comments" validate:"max=1000"`
	Name              string   `json:"name" validate:"required,max=100"`
	Email             string   `json:"email" validate:"required,email"`
	Phone             string   `json:"phone" validate:"required,max=30"`
	CountryCode       string   `json:"countryCode" validate:"omitempty,max=6"`
}

func (in *CustomTourInput) normalize() {
	in.StartDate = strings.TrimSpace(in.StartDate)
	in.AccommodationType = strings.TrimSpace(in.AccommodationType)
	in.Destinations = trimAll(in.Destinations)
	in.BudgetRange = strings.TrimSpace(in.BudgetRange)
	in.Comments = strings.TrimSpace(in.Comments)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.CountryCode = strings.TrimSpace(in.CountryCode)
	if in.CountryCode == "" {
		in.CountryCode = entity.DefaultCountryCode
	}
}

// ReviewInput is the public review form
type ReviewInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Rating      FlexInt `json:"rating" validate:"min=1,max=5"`
	Description string  `json:"description" validate:"required,max=1000"`
}

func (in *ReviewInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	in.Description = strings.TrimSpace(in.Description)
}

// ItineraryInput is one itinerary day of a tour
type ItineraryInput struct {
	Day         FlexInt  `json:"day" validate:"min=1"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

func toItinerary(in []ItineraryInput) []entity.ItineraryDay {
	days := make([]entity.ItineraryDay, 0, len(in))
	for _, d := range in {
		days = append(days, entity.ItineraryDay{
			Day:         int(d.Day),
			Title:       strings.TrimSpace(d.Title),
			Description: strings.TrimSpace(d.Description),
			Highlights:  nonNil(trimAll(d.Highlights)),
		})
	}
	return days
}

// TourInput creates a tour
type TourInput struct {
	Name          string           `json:"name" validate:"required,max=200"`
	Slug          string           `json:"slug" validate:"omitempty,max=200"`
	Description   string           `json:"description" validate:"required"`
	Overview      string           `json:"overview"`
	Category      string           `json:"category" validate:"required,tourcategory"`
	Price         *FlexFloat       `json:"price" validate:"omitempty,gte=0"`
	OriginalPrice *FlexFloat       `json:"originalPrice" validate:"omitempty,gte=0"`
	Duration      string           `json:"duration" validate:"required"`
	MaxGuests     FlexInt          `json:"maxGuests" validate:"min=1"`
	MinAge        FlexInt          `json:"minAge" validate:"min=0"`
	Rating        *FlexFloat       `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Reviews       *FlexInt         `json:"reviews" validate:"omitempty,min=0"`
	Highlights    []string         `json:"highlights" validate:"dive,required"`
	Included      []string         `json:"included" validate:"dive,required"`
	NotIncluded   []string         `json:"notIncluded" validate:"dive,required"`
	Itinerary     []ItineraryInput `json:"itinerary" validate:"dive"`
	Images        []string         `json:"images" validate:"dive,required"`
	Destinations  []string         `json:"destinations" validate:"dive,required"`
	Status        string           `json:"status" validate:"omitempty,tourstatus"`
}

func (in *TourInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	in.Description = strings.TrimSpace(in.Description)
	in.Overview = strings.TrimSpace(in.Overview)
	in.Category = strings.TrimSpace(in.Category)
	in.Duration = strings.TrimSpace(in.Duration)
	in.Highlights = trimAll(in.Highlights)
	in.Included = trimAll(in.Included)
	in.NotIncluded = trimAll(in.NotIncluded)
	in.Images = trimAll(in.Images)
	in.Destinations = trimAll(in.Destinations)
	in.Status = strings.TrimSpace(in.Status)
}

// TourUpdate partially updates a tour. Nil fields are left unchanged.
type TourUpdate struct {
	Name          *string           `json:"name" validate:"omitempty,notblank,max=200"`
	Slug          *string           `json:"slug" validate:"omitempty,max=200"`
	Description   *string           `json:"description" validate:"omitempty,notblank"`
	Overview      *string           `json:"overview"`
	Category      *string           `json:"category" validate:"omitempty,tourcategory"`
	Price         *FlexFloat        `json:"price" validate:"omitempty,gte=0"`
	OriginalPrice *FlexFloat        `json:"originalPrice" validate:"omitempty,gte=0"`
	Duration      *string           `json:"duration" validate:"omitempty,notblank"`
	MaxGuests     *FlexInt          `json:"maxGuests" validate:"omitempty,min=1"`
	MinAge        *FlexInt          `json:"minAge" validate:"omitempty,min=0"`
	Rating        *FlexFloat        `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Reviews       *FlexInt          `json:"reviews" validate:"omitempty,min=0"`
	Highlights    *[]string         `json:"highlights" validate:"omitempty,dive,required"`
	Included      *[]string         `json:"included" validate:"omitempty,dive,required"`
	NotIncluded   *[]string         `json:"notIncluded" validate:"omitempty,dive,required"`
	Itinerary     *[]ItineraryInput `json:"itinerary" validate:"omitempty,dive"`
	Images        *[]string         `json:"images" validate:"omitempty,dive,required"`
	Destinations  *[]string         `json:"destinations" validate:"omitempty,dive,required"`
	Status        *string           `json:"status" validate:"omitempty,tourstatus"`
}

func (in *TourUpdate) normalize() {
	for _, s := range []*string{in.Name, in.Slug, in.Description, in.Overview, in.Category, in.Duration, in.Status} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	// blank enum fields leave the stored value alone
	if in.Category != nil && *in.Category == "" {
		in.Category = nil
	}
	if in.Status != nil && *in.Status == "" {
		in.Status = nil
	}
	for _, l := range []*[]string{in.Highlights, in.Included, in.NotIncluded, in.Images, in.Destinations} {
		if l != nil {
			*l = trimAll(*l)
		}
	}
}

// StatusInput carries an admin status transition
type StatusInput struct {
	Status string `json:"status"`
}

// LoginInput carries admin credentials
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminInput creates an admin account
type AdminInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,adminrole"`
}

func (in *AdminInput) normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)
	in.Role = strings.TrimSpace(in.Role)
	if in.Role == "" {
		in.Role = entity.RoleAdmin
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func floatPtr(f *FlexFloat) *float64 {
	if f == nil {
		return nil
	}
	v := float64(*f)
	return &v
}
