package client

import "errors"

var errNilUI = errors.New("client ui is not set")
