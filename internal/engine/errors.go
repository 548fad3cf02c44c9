package engine

import "errors"

var ErrAlreadyRunning = errors.New("game already running")
var ErrDuplicateName = errors.New("name already taken")
var ErrInvalidToken = errors.New("invalid token")
var ErrNotRunning = errors.New("game not running")
var ErrNotYourTurn = errors.New("not your turn")
var ErrInvalidCard = errors.New("invalid card")
var ErrAlreadyFlipped = errors.New("card already flipped")
