package handler

import (
	"errors"
	"log/slog"

	"github.com/casaluna/hotel/api/internal/database"
	"github.com/casaluna/hotel/api/internal/model"
	"github.com/casaluna/hotel/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring
// consistent HTTP status codes and error messages across the API.
// Database and other unrecognized errors are logged and collapsed into a
// generic 500 so internal query text never reaches a client.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAccountDisabled):
		return model.NewUnauthorizedError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrRoomNotFound):
		return model.NewNotFoundError("room")
	case errors.Is(err, service.ErrBookingNotFound):
		return model.NewNotFoundError("booking")
	case errors.Is(err, service.ErrMenuItemNotFound):
		return model.NewNotFoundError("menu item")
	case errors.Is(err, service.ErrMenuImageNotFound):
		return model.NewNotFoundError("menu image")
	case errors.Is(err, service.ErrGalleryImageNotFound):
		return model.NewNotFoundError("gallery image")
	case errors.Is(err, service.ErrNotificationNotFound):
		return model.NewNotFoundError("notification bar")
	case errors.Is(err, service.ErrContactMessageNotFound):
		return model.NewNotFoundError("contact message")
	case errors.Is(err, service.ErrGuestNotFound):
		return model.NewNotFoundError("guest")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrRoomNumberExists),
		errors.Is(err, service.ErrRoomAlreadyBooked):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "credentials", Message: err.Error()}})

	case errors.Is(err, service.ErrInvalidRoomNumber),
		errors.Is(err, service.ErrInvalidRoomType),
		errors.Is(err, service.ErrDescriptionRequired),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrInvalidCapacity),
		errors.Is(err, service.ErrRoomNotAvailable),
		errors.Is(err, service.ErrRoomHasBookings):
		return model.NewValidationError([]model.FieldError{{Field: "room", Message: err.Error()}})

	case errors.Is(err, service.ErrGuestNameRequired),
		errors.Is(err, service.ErrInvalidDateRange),
		errors.Is(err, service.ErrCheckInPast),
		errors.Is(err, service.ErrInvalidGuestCount),
		errors.Is(err, service.ErrGuestCountExceeds),
		errors.Is(err, service.ErrInvalidBookingStatus),
		errors.Is(err, service.ErrInvalidStatusTransition):
		return model.NewValidationError([]model.FieldError{{Field: "booking", Message: err.Error()}})

	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrInvalidCategory):
		return model.NewValidationError([]model.FieldError{{Field: "menu", Message: err.Error()}})

	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrImageRequired),
		errors.Is(err, service.ErrInvalidImageType),
		errors.Is(err, service.ErrImageTooLarge):
		return model.NewValidationError([]model.FieldError{{Field: "image", Message: err.Error()}})

	case errors.Is(err, service.ErrMessageRequired),
		errors.Is(err, service.ErrInvalidNotificationType):
		return model.NewValidationError([]model.FieldError{{Field: "notification", Message: err.Error()}})

	case errors.Is(err, service.ErrSubjectRequired),
		errors.Is(err, service.ErrMessageBodyRequired):
		return model.NewValidationError([]model.FieldError{{Field: "contact", Message: err.Error()}})

	case errors.Is(err, service.ErrFirstNameRequired),
		errors.Is(err, service.ErrLastNameRequired),
		errors.Is(err, service.ErrDocumentIDRequired),
		errors.Is(err, service.ErrGuestRoomNotFound),
		errors.Is(err, service.ErrRegistrarNotActive):
		return model.NewValidationError([]model.FieldError{{Field: "guest", Message: err.Error()}})

	// ===== Fallback whitelist miss → 500, logged with the excerpt =====
	case errors.Is(err, database.ErrUnsupportedQuery):
		slog.Error("query outside fallback whitelist", slog.String("error", err.Error()))
		return model.NewInternalError("")
	}

	// Unrecognized errors are backend failures. Log the detail, return a
	// generic message.
	slog.Error("unhandled service error", slog.String("error", err.Error()))
	return model.NewInternalError("")
}
