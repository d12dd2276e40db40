package errors

import "net/http"

var (
	ErrSpotNotFound = New(
		"SPOT_NOT_FOUND",
		"Spot not found",
		http.StatusNotFound,
	)

	ErrCollectionNotFound = New(
		"COLLECTION_NOT_FOUND",
		"Collection not found",
		http.StatusNotFound,
	)

	ErrChallengeNotFound = New(
		"CHALLENGE_NOT_FOUND",
		"No challenge scheduled for this day",
		http.StatusNotFound,
	)

	ErrValidation = New(
		"VALIDATION_ERROR",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrMissingLocation = New(
		"MISSING_LOCATION",
		"Spot requires resolvable latitude and longitude",
		http.StatusBadRequest,
	)

	ErrDataIntegrity = New(
		"DATA_INTEGRITY_ERROR",
		"Stored spot is missing its location",
		http.StatusInternalServerError,
	)

	ErrQueryFailed = New(
		"QUERY_FAILED",
		"Spot query failed",
		http.StatusInternalServerError,
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

	ErrClassifierUnavailable = New(
		"CLASSIFIER_UNAVAILABLE",
		"Image classifier is unavailable",
		http.StatusServiceUnavailable,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Missing or invalid authentication token",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Operation not permitted for this user",
		http.StatusForbidden,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
