package store

import "errors"

var ErrGameNotFound = errors.New("no game with that id")
