package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hostel-backend/middleware"
	"hostel-backend/models"
	"hostel-backend/serializers"
	"hostel-backend/services"
	"hostel-backend/utils"
)

// Mutating booking endpoints answer with a 303 back to the listing route,
// keeping the portal's post-redirect-get flow.
const bookingOverviewRoute = "/api/bookings"

type BookingController struct {
	Bookings *services.BookingService
	Rooms    *services.RoomService
	Messes   *services.MessService
}

func NewBookingController(
	bookings *services.BookingService,
	rooms *services.RoomService,
	messes *services.MessService,
) *BookingController {
	return &BookingController{Bookings: bookings, Rooms: rooms, Messes: messes}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// Overview returns everything the booking page shows: all rooms and mess
// plans plus the caller's current booking per resource type.
func (ctrl *BookingController) Overview(c *gin.Context) {
	user := middleware.CurrentUser(c)

	rooms, err := ctrl.Rooms.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load rooms")
		return
	}
	messes, err := ctrl.Messes.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load mess plans")
		return
	}

	data := gin.H{
		"rooms":  serializers.NewRoomViews(rooms),
		"messes": serializers.NewMessViews(messes),
	}

	roomBooking, roomBooked, err := ctrl.Bookings.UserRoomBooking(user.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings")
		return
	}
	data["room_booked"] = roomBooked
	if roomBooked {
		data["room_booking"] = serializers.NewRoomBookingView(roomBooking)
	}

	messBooking, messBooked, err := ctrl.Bookings.UserMessBooking(user.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings")
		return
	}
	data["mess_booked"] = messBooked
	if messBooked {
		data["mess_booking"] = serializers.NewMessBookingView(messBooking)
	}

	utils.JSONSuccess(c, http.StatusOK, data)
}

// BookRoom requests the room for the caller. Holding any room booking
// already makes this a silent no-op; either way the client is sent back to
// the booking overview.
func (ctrl *BookingController) BookRoom(c *gin.Context) {
	user := middleware.CurrentUser(c)
	roomID, ok := parseID(c)
	if !ok {
		return
	}

	_, created, err := ctrl.Bookings.CreateRoomBooking(user.ID, roomID)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		log.Printf("room booking failed (user=%d room=%d): %v", user.ID, roomID, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking")
		return
	}
	if !created {
		log.Printf("room booking skipped, user %d already holds one", user.ID)
	}
	c.Redirect(http.StatusSeeOther, bookingOverviewRoute)
}

// BookMess is the mess-plan mirror of BookRoom.
func (ctrl *BookingController) BookMess(c *gin.Context) {
	user := middleware.CurrentUser(c)
	messID, ok := parseID(c)
	if !ok {
		return
	}

	_, created, err := ctrl.Bookings.CreateMessBooking(user.ID, messID)
	if err != nil {
		if errors.Is(err, services.ErrMessNotFound) {
			utils.JSONError(c, http.StatusNotFound, "mess plan not found")
			return
		}
		log.Printf("mess booking failed (user=%d mess=%d): %v", user.ID, messID, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking")
		return
	}
	if !created {
		log.Printf("mess booking skipped, user %d already holds one", user.ID)
	}
	c.Redirect(http.StatusSeeOther, bookingOverviewRoute)
}

// CancelRoom drops the caller's room booking row, whatever its status.
func (ctrl *BookingController) CancelRoom(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if err := ctrl.Bookings.CancelRoomBooking(user.ID); err != nil && !errors.Is(err, services.ErrBookingNotFound) {
		log.Printf("room booking cancel failed (user=%d): %v", user.ID, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking")
		return
	}
	c.Redirect(http.StatusSeeOther, bookingOverviewRoute)
}

// CancelMess drops the caller's mess booking row, whatever its status.
func (ctrl *BookingController) CancelMess(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if err := ctrl.Bookings.CancelMessBooking(user.ID); err != nil && !errors.Is(err, services.ErrBookingNotFound) {
		log.Printf("mess booking cancel failed (user=%d): %v", user.ID, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking")
		return
	}
	c.Redirect(http.StatusSeeOther, bookingOverviewRoute)
}

// Review returns the admin booking board: pending and approved rows plus a
// full listing, for both resource types. An optional ?status= narrows the
// full listing.
func (ctrl *BookingController) Review(c *gin.Context) {
	statusFilter := c.Query("status")

	roomPending, err := ctrl.Bookings.ListRoomBookingRows(models.BookingStatusPending)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings")
		return
	}
	roomApproved, err := ctrl.Bookings.ListRoomBookingRows(models.BookingStatusApproved)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings")
		return
	}
	roomAll, err := ctrl.Bookings.ListRoomBookingRows(statusFilter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings")
		return
	}

	messPending, err := ctrl.Bookings.ListMessBookingRows(models.BookingStatusPending)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings")
		return
	}
	messApproved, err := ctrl.Bookings.ListMessBookingRows(models.BookingStatusApproved)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings")
		return
	}
	messAll, err := ctrl.Bookings.ListMessBookingRows(statusFilter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"room_pending":  roomPending,
		"room_approved": roomApproved,
		"room_bookings": roomAll,
		"mess_pending":  messPending,
		"mess_approved": messApproved,
		"mess_bookings": messAll,
	})
}

// Decide builds the handler for one admin decision route, e.g. approving
// room bookings. The target booking is addressed by username, matching how
// the review board lists rows.
func (ctrl *BookingController) Decide(resource, decision string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")
		err := ctrl.Bookings.Decide(resource, username, decision)
		if err != nil && !errors.Is(err, services.ErrUserNotFound) && !errors.Is(err, services.ErrBookingNotFound) {
			log.Printf("booking decision failed (%s/%s user=%s): %v", resource, decision, username, err)
			utils.JSONError(c, http.StatusInternalServerError, "failed to apply decision")
			return
		}
		c.Redirect(http.StatusSeeOther, "/api/admin/bookings")
	}
}
