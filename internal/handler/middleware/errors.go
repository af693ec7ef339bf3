package middleware

import "hotel-availability/internal/pkg/errs"

var (
	errMissingToken     = errs.New("missing access token")
	errMissingRole      = errs.New("role missing from context")
	errInsufficientRole = errs.New("insufficient role")
)
