package errors

import "net/http"

var (
	ErrBuildingNotFound = New(
		"BUILDING_NOT_FOUND",
		"Building not found",
		http.StatusNotFound,
	)

	ErrFloorNotFound = New(
		"FLOOR_NOT_FOUND",
		"Floor not found",
		http.StatusNotFound,
	)

	ErrFloorPlanNotFound = New(
		"FLOOR_PLAN_NOT_FOUND",
		"Floor plan not found",
		http.StatusNotFound,
	)

	ErrApartmentNotFound = New(
		"APARTMENT_NOT_FOUND",
		"Apartment not found",
		http.StatusNotFound,
	)

	ErrSelectionNotFound = New(
		"SELECTION_NOT_FOUND",
		"Selection session not found or expired",
		http.StatusNotFound,
	)

	ErrDuplicateSlug = New(
		"DUPLICATE_SLUG",
		"Building with this slug already exists",
		http.StatusConflict,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = New(
		"INVALID_STATUS",
		"Invalid apartment status",
		http.StatusBadRequest,
	)

	ErrInvalidViewport = New(
		"INVALID_VIEWPORT",
		"Rendered image size must be positive",
		http.StatusBadRequest,
	)

	ErrInvalidSelection = New(
		"INVALID_SELECTION",
		"Selection action is not allowed in the current state",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidCalculation = New(
		"INVALID_CALCULATION",
		"Invalid payment plan parameters",
		http.StatusBadRequest,
	)

	ErrInvalidPassword = New(
		"INVALID_PASSWORD",
		"Admin password is missing or incorrect",
		http.StatusForbidden,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
