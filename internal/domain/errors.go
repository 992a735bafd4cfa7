package domain

import "errors"

var (
	ErrPoolExhausted    = errors.New("no free chat window")
	ErrInvalidSlotIndex = errors.New("invalid window index")
	ErrCloseConsole     = errors.New("console window cannot be closed")
	ErrEmptyPartner     = errors.New("partner id is empty")
	ErrNotInitialized   = errors.New("windows not initialized")
	ErrNotConnected     = errors.New("not connected")
	ErrAlreadyConnected = errors.New("already connected")
)
