// Package serializers shapes entities into the flat views returned by the
// API. Each view projects exactly the fields the portal pages consume;
// passwords and relation structs never leave through here.
package serializers

import (
	"time"

	"hostel-backend/models"
)

type UserView struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserView(u models.User) UserView {
	return UserView{ID: u.ID, Username: u.Username, Email: u.Email, Admin: u.Admin, CreatedAt: u.CreatedAt}
}

func NewUserViews(users []models.User) []UserView {
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserView(u))
	}
	return out
}

type RoomView struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Size             int    `json:"size"`
	AttachedBathroom bool   `json:"attached_bathroom"`
	Status           string `json:"status"`
	Price            int    `json:"price"`
	Description      string `json:"description"`
}

func NewRoomView(r models.Room) RoomView {
	return RoomView{
		ID:               r.ID,
		Name:             r.Name,
		Size:             r.Size,
		AttachedBathroom: r.AttachedBathroom,
		Status:           r.Status,
		Price:            r.Price,
		Description:      r.Description,
	}
}

func NewRoomViews(rooms []models.Room) []RoomView {
	out := make([]RoomView, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, NewRoomView(r))
	}
	return out
}

type MessView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Price       int    `json:"price"`
}

func NewMessView(m models.Mess) MessView {
	return MessView{ID: m.ID, Name: m.Name, Description: m.Description, Status: m.Status, Price: m.Price}
}

func NewMessViews(messes []models.Mess) []MessView {
	out := make([]MessView, 0, len(messes))
	for _, m := range messes {
		out = append(out, NewMessView(m))
	}
	return out
}

type RoomBookingView struct {
	ID            uint       `json:"id"`
	UserID        uint       `json:"user_id"`
	RoomID        uint       `json:"room_id"`
	Status        string     `json:"status"`
	ReferenceCode string     `json:"reference_code,omitempty"`
	CheckIn       time.Time  `json:"check_in"`
	CheckOut      *time.Time `json:"check_out,omitempty"`
}

func NewRoomBookingView(b models.RoomBooking) RoomBookingView {
	return RoomBookingView{
		ID:            b.ID,
		UserID:        b.UserID,
		RoomID:        b.RoomID,
		Status:        b.Status,
		ReferenceCode: b.ReferenceCode,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
	}
}

type MessBookingView struct {
	ID            uint       `json:"id"`
	UserID        uint       `json:"user_id"`
	MessID        uint       `json:"mess_id"`
	Status        string     `json:"status"`
	ReferenceCode string     `json:"reference_code,omitempty"`
	CheckIn       time.Time  `json:"check_in"`
	CheckOut      *time.Time `json:"check_out,omitempty"`
}

func NewMessBookingView(b models.MessBooking) MessBookingView {
	return MessBookingView{
		ID:            b.ID,
		UserID:        b.UserID,
		MessID:        b.MessID,
		Status:        b.Status,
		ReferenceCode: b.ReferenceCode,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
	}
}

type AnnouncementView struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewAnnouncementView(a models.Announcement) AnnouncementView {
	return AnnouncementView{ID: a.ID, Title: a.Title, Description: a.Description, CreatedAt: a.CreatedAt}
}

func NewAnnouncementViews(list []models.Announcement) []AnnouncementView {
	out := make([]AnnouncementView, 0, len(list))
	for _, a := range list {
		out = append(out, NewAnnouncementView(a))
	}
	return out
}

type TicketView struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewTicketView(t models.Ticket) TicketView {
	return TicketView{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
	}
}

func NewTicketViews(tickets []models.Ticket) []TicketView {
	out := make([]TicketView, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, NewTicketView(t))
	}
	return out
}

type TicketReplyView struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	UserID      uint      `json:"user_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewTicketReplyView(r models.TicketReply) TicketReplyView {
	return TicketReplyView{
		ID:          r.ID,
		TicketID:    r.TicketID,
		UserID:      r.UserID,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

func NewTicketReplyViews(replies []models.TicketReply) []TicketReplyView {
	out := make([]TicketReplyView, 0, len(replies))
	for _, r := range replies {
		out = append(out, NewTicketReplyView(r))
	}
	return out
}
