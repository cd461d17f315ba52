package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToCall   = errors.New("failed to call contract")
	ErrFailedToDecode = errors.New("failed to decode contract output")
	ErrFailedToPack   = errors.New("failed to pack contract call")
	ErrInvalidAddress = errors.New("invalid address")
)
