// Package models holds the flat resource records delivered by the TANSS API.
// The records carry no behaviour beyond their display labels.
package models

import (
	"strconv"
	"time"
)

const dateTimeLayout = "2006-01-02 15:04:05"

// Object is the identity shared by resource records that the API exposes as
// standalone objects.
type Object struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// CompanyType describes a category of company.
type CompanyType struct {
	Name         string `json:"name"`
	CategoryName string `json:"categoryName"`
	Icon         string `json:"icon"`
	ID           int    `json:"id"`
	CategoryID   int    `json:"categoryId"`
	IsHidden     bool   `json:"isHidden"`
}

func (c CompanyType) String() string {
	if c.Name != "" {
		return c.Name
	}

	return "CompanyType"
}

// TicketContent is one entry in a ticket's history: a comment, an activity,
// a mail and so on, identified by Type.
type TicketContent struct {
	Date     time.Time `json:"date"`
	Object   any       `json:"object,omitempty"`
	Type     string    `json:"type"`
	Text     string    `json:"text"`
	TicketID int       `json:"ticketId"`
	ID       int       `json:"id"`
}

func (c TicketContent) String() string {
	switch {
	case c.TicketID != 0:
		return "TicketId:" + strconv.Itoa(c.TicketID)
	case c.Type != "":
		return c.Type
	case !c.Date.IsZero():
		return c.Date.Format(dateTimeLayout)
	default:
		return "TicketContent"
	}
}

// TicketDocument is a file attached to a ticket.
type TicketDocument struct {
	Key         string `json:"key"`
	DownloadURI string `json:"downloadUri"`
	Object
}

func (d TicketDocument) String() string {
	if d.Name != "" {
		return d.Name
	}

	if d.ID != 0 {
		return "Document:" + strconv.Itoa(d.ID)
	}

	return "TicketDocument"
}
