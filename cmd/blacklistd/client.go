package main

import (
	"bufio"
	"fmt"
	"net"
	"strconv"

	"github.com/fwojciec/blacklist"
	"github.com/fwojciec/blacklist/tcp"
)

// Run executes the client command: each stdin line is sent to the server
// and the framed response is printed.
func (c *ClientCmd) Run(deps *Dependencies) error {
	client, err := tcp.Dial(deps.Ctx, net.JoinHostPort(c.Host, strconv.Itoa(c.Port)))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	defer client.Close()

	scanner := bufio.NewScanner(deps.Stdin)
	for scanner.Scan() {
		resp, err := client.Do(scanner.Text())
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", blacklist.ErrorMessage(err))
			return err
		}
		fmt.Fprint(deps.Stdout, resp.Format())
	}
	return scanner.Err()
}
