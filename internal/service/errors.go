package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid          = errors.New("invalid request parameters")
	ErrEmailExists           = errors.New("email already registered")
	ErrUsernameExists        = errors.New("username already taken")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserNotFound          = errors.New("user not found")
	ErrXAccountNotConnected  = errors.New("no X account connected")
	ErrInvalidState          = errors.New("invalid or expired state token")
	ErrTokenExchangeFailed   = errors.New("authorization code exchange failed")
	ErrConfirmationRequired  = errors.New("unfollow must be confirmed")
	ErrTargetRequired        = errors.New("target user id and username are required")
	ErrTargetWhitelisted     = errors.New("target account is whitelisted")
	ErrAlreadyWhitelisted    = errors.New("account already whitelisted")
	ErrWhitelistNotFound     = errors.New("whitelist entry not found")
	UnauthorizedError        = errors.New("insufficient permissions")
	UnExpectedError          = errors.New("unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrEmailExists:          BadRequest,
	ErrUsernameExists:       BadRequest,
	ErrInvalidCredentials:   Unauthorized,
	ErrUserNotFound:         NotFound,
	ErrXAccountNotConnected: NotFound,
	ErrInvalidState:         Unauthorized,
	ErrTokenExchangeFailed:  Unauthorized,
	ErrConfirmationRequired: BadRequest,
	ErrTargetRequired:       BadRequest,
	ErrTargetWhitelisted:    Forbidden,
	ErrAlreadyWhitelisted:   BadRequest,
	ErrWhitelistNotFound:    NotFound,
	UnauthorizedError:       Forbidden,
	UnExpectedError:         InternalServerError,
}
