package line

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/fwojciec/blacklist"
)

// ReadResponse reads one framed response: a status line and, for 200, an
// empty line followed by the body line.
func ReadResponse(r *bufio.Reader) (blacklist.Response, error) {
	statusLine, err := readLine(r)
	if err != nil {
		return blacklist.Response{}, err
	}
	status, err := parseStatus(statusLine)
	if err != nil {
		return blacklist.Response{}, err
	}
	if status != blacklist.StatusOK {
		return blacklist.Response{Status: status}, nil
	}
	if _, err := readLine(r); err != nil {
		return blacklist.Response{}, err
	}
	body, err := readLine(r)
	if err != nil {
		return blacklist.Response{}, err
	}
	return blacklist.Response{Status: status, Body: body}, nil
}

func readLine(r *bufio.Reader) (string, error) {
	s, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

func parseStatus(line string) (blacklist.Status, error) {
	code, text, _ := strings.Cut(line, " ")
	n, err := strconv.Atoi(code)
	if err != nil {
		return 0, blacklist.Errorf(blacklist.EINVALID, "malformed status line %q", line)
	}
	status := blacklist.Status(n)
	if status.Text() == "" || status.Text() != text {
		return 0, blacklist.Errorf(blacklist.EINVALID, "unknown status %q", line)
	}
	return status, nil
}
