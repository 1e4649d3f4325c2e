package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-backend/middleware"
	"hostel-backend/models"
	"hostel-backend/serializers"
	"hostel-backend/services"
	"hostel-backend/utils"
)

type DashboardController struct {
	Bookings *services.BookingService
	Rooms    *services.RoomService
	Messes   *services.MessService
	Tickets  *services.TicketService
}

func NewDashboardController(
	bookings *services.BookingService,
	rooms *services.RoomService,
	messes *services.MessService,
	tickets *services.TicketService,
) *DashboardController {
	return &DashboardController{Bookings: bookings, Rooms: rooms, Messes: messes, Tickets: tickets}
}

// Dashboard returns the caller's bookings with the booked room and mess
// plan resolved, the data the resident dashboard page shows.
func (ctrl *DashboardController) Dashboard(c *gin.Context) {
	user := middleware.CurrentUser(c)

	data := gin.H{"user": serializers.NewUserView(*user)}

	roomBooking, roomBooked, err := ctrl.Bookings.UserRoomBooking(user.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	data["room_booked"] = roomBooked
	if roomBooked {
		data["room_booking"] = serializers.NewRoomBookingView(roomBooking)
		if room, err := ctrl.Rooms.GetByID(roomBooking.RoomID); err == nil {
			data["room"] = serializers.NewRoomView(room)
		}
	}

	messBooking, messBooked, err := ctrl.Bookings.UserMessBooking(user.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	data["mess_booked"] = messBooked
	if messBooked {
		data["mess_booking"] = serializers.NewMessBookingView(messBooking)
		if mess, err := ctrl.Messes.GetByID(messBooking.MessID); err == nil {
			data["mess"] = serializers.NewMessView(mess)
		}
	}

	utils.JSONSuccess(c, http.StatusOK, data)
}

// AdminDashboard summarises what needs admin attention.
func (ctrl *DashboardController) AdminDashboard(c *gin.Context) {
	user := middleware.CurrentUser(c)

	pendingRooms, err := ctrl.Bookings.ListRoomBookingRows(models.BookingStatusPending)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	pendingMess, err := ctrl.Bookings.ListMessBookingRows(models.BookingStatusPending)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	tickets, _, err := ctrl.Tickets.ListAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	openTickets := 0
	for _, t := range tickets {
		if t.Status == models.TicketStatusPending {
			openTickets++
		}
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"user":                  serializers.NewUserView(*user),
		"pending_room_bookings": len(pendingRooms),
		"pending_mess_bookings": len(pendingMess),
		"open_tickets":          openTickets,
	})
}
