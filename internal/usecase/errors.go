package usecase

import "errors"

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")

	ErrUserNotFound        = errors.New("user not found")
	ErrJobOfferNotFound    = errors.New("job offer not found")
	ErrJobOfferClosed      = errors.New("job offer is not accepting applications")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied to this job offer")
	ErrSelfReview          = errors.New("cannot review yourself")
	ErrObjectiveNotFound   = errors.New("objective not found")

	// ErrUpstreamUnavailable means the opening or the candidate pool could not
	// be loaded in time; the ranking engine was not run.
	ErrUpstreamUnavailable = errors.New("candidate data unavailable")
)
