package dtos

import "github.com/justsurfingit/hireable/internal/contact"

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (r ContactRequest) Draft() contact.Draft {
	return contact.Draft{Name: r.Name, Email: r.Email, Subject: r.Subject, Message: r.Message}
}

type ContactResponse struct {
	Notice Notice        `json:"notice"`
	Reset  contact.Draft `json:"reset"`
}
