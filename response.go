package blacklist

import (
	"strconv"
	"strings"
)

// Status is a protocol status code.
type Status int

// Status codes used by the line protocol.
const (
	StatusOK                  Status = 200
	StatusCreated             Status = 201
	StatusNoContent           Status = 204
	StatusBadRequest          Status = 400
	StatusNotFound            Status = 404
	StatusInternalServerError Status = 500
)

var statusText = map[Status]string{
	StatusOK:                  "OK",
	StatusCreated:             "Created",
	StatusNoContent:           "No Content",
	StatusBadRequest:          "Bad Request",
	StatusNotFound:            "Not Found",
	StatusInternalServerError: "Internal Server Error",
}

// Text returns the reason phrase for the status, or "" if it is unknown.
func (s Status) Text() string {
	return statusText[s]
}

// String returns the status line without the trailing newline, e.g. "404 Not Found".
func (s Status) String() string {
	if text := s.Text(); text != "" {
		return strconv.Itoa(int(s)) + " " + text
	}
	return "Unknown Status"
}

// Response is the reply to one protocol line.
// Only StatusOK responses carry a body.
type Response struct {
	Status Status
	Body   string
}

// Format renders the response as written on the wire.
// A StatusOK response is followed by an empty line and the body line.
func (r Response) Format() string {
	var b strings.Builder
	b.WriteString(r.Status.String())
	b.WriteString("\n")
	if r.Status == StatusOK {
		b.WriteString("\n")
		b.WriteString(r.Body)
		b.WriteString("\n")
	}
	return b.String()
}

// ErrorStatus maps an application error to the status reported to clients.
func ErrorStatus(err error) Status {
	switch ErrorCode(err) {
	case "":
		return StatusOK
	case EINVALID:
		return StatusBadRequest
	case ENOTFOUND:
		return StatusNotFound
	default:
		return StatusInternalServerError
	}
}
