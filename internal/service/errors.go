package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
	ErrInvalidEmail       = errors.New("invalid email format")
)

// ===== Room Errors =====
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomNumberExists    = errors.New("a room with this number already exists")
	ErrInvalidRoomType     = errors.New("invalid room type")
	ErrInvalidRoomNumber   = errors.New("room number must be positive")
	ErrInvalidPrice        = errors.New("price must be a positive number")
	ErrInvalidCapacity     = errors.New("capacity must be between 1 and 10")
	ErrRoomHasBookings     = errors.New("room has active bookings")
	ErrRoomNotAvailable    = errors.New("room is not available")
	ErrDescriptionRequired = errors.New("description is required")
)

// ===== Booking Errors =====
var (
	ErrBookingNotFound         = errors.New("booking not found")
	ErrGuestNameRequired       = errors.New("guest name is required")
	ErrInvalidDateRange        = errors.New("check-out date must be after check-in date")
	ErrCheckInPast             = errors.New("check-in date cannot be in the past")
	ErrInvalidGuestCount       = errors.New("number of guests must be positive")
	ErrGuestCountExceeds       = errors.New("number of guests exceeds room capacity")
	ErrInvalidBookingStatus    = errors.New("invalid booking status")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
	ErrRoomAlreadyBooked       = errors.New("room is already booked for these dates")
)

// ===== Menu Errors =====
var (
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrMenuImageNotFound = errors.New("menu image not found")
	ErrNameRequired      = errors.New("name is required")
	ErrInvalidCategory   = errors.New("invalid category")
)

// ===== Gallery Errors =====
var (
	ErrGalleryImageNotFound = errors.New("gallery image not found")
	ErrTitleRequired        = errors.New("title is required")
	ErrImageRequired        = errors.New("image file is required")
	ErrInvalidImageType     = errors.New("unsupported image type")
	ErrImageTooLarge        = errors.New("image exceeds maximum size")
)

// ===== Notification Errors =====
var (
	ErrNotificationNotFound    = errors.New("notification bar not found")
	ErrMessageRequired         = errors.New("message is required")
	ErrInvalidNotificationType = errors.New("invalid notification type")
)

// ===== Contact Errors =====
var (
	ErrContactMessageNotFound = errors.New("contact message not found")
	ErrSubjectRequired        = errors.New("subject is required")
	ErrMessageBodyRequired    = errors.New("message body is required")
)

// ===== Guest Errors =====
var (
	ErrGuestNotFound      = errors.New("guest not found")
	ErrDocumentIDRequired = errors.New("document ID is required")
	ErrFirstNameRequired  = errors.New("first name is required")
	ErrLastNameRequired   = errors.New("last name is required")
	ErrRegistrarNotActive = errors.New("registering account is not active")
	ErrGuestRoomNotFound  = errors.New("assigned room not found")
)
