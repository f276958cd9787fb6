package errors

import "net/http"

// Fixed user facing messages, one per failure kind.
const (
	MsgBadRequest       = "Bad request"
	MsgNotFound         = "Resources not found"
	MsgUnprocessable    = "Can't be processed"
	MsgMethodNotAllowed = "Method not allowed"
)

var messages = map[int]string{
	http.StatusBadRequest:          MsgBadRequest,
	http.StatusNotFound:            MsgNotFound,
	http.StatusUnprocessableEntity: MsgUnprocessable,
	http.StatusMethodNotAllowed:    MsgMethodNotAllowed,
}
