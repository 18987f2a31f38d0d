package tcp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/fwojciec/blacklist"
	"github.com/fwojciec/blacklist/line"
)

// Client sends request lines to a server and reads framed responses.
type Client struct {
	conn net.Conn
	r    *bufio.Reader
}

// Dial connects to the server at addr.
func Dial(ctx context.Context, addr string) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return &Client{conn: conn, r: bufio.NewReader(conn)}, nil
}

// Do sends one request line and returns the response.
func (c *Client) Do(req string) (blacklist.Response, error) {
	req = strings.TrimRight(req, "\r\n")
	if _, err := io.WriteString(c.conn, req+"\n"); err != nil {
		return blacklist.Response{}, err
	}
	return line.ReadResponse(c.r)
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
