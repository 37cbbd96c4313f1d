package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Validate checks if the post meets all validation requirements
func (p *BlogPost) Validate() error {
	return validate.Struct(p)
}

// BeforeCreate sets up any necessary fields before creation
func (p *BlogPost) BeforeCreate() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
}

// Response maps the stored record to its wire representation.
func (p *BlogPost) Response() *PostResponse {
	return &PostResponse{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
		Author:  p.AuthorName,
	}
}

// Validate checks if the create input meets all validation requirements
func (in *PostInput) Validate() error {
	return validate.Struct(in)
}

// Validate checks that both author name parts are present.
func (a *Author) Validate() error {
	return validate.Struct(a)
}

// DisplayName collapses the structured author into the stored display
// string: first name, one space, last name. Case and spacing of the inputs
// are preserved as-is.
func (a *Author) DisplayName() string {
	return a.FirstName + " " + a.LastName
}
