package main_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/blacklist"
	main "github.com/fwojciec/blacklist/cmd/blacklistd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"serve", "client", "estimate"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestServeCmd_Validate(t *testing.T) {
	t.Parallel()

	valid := func() main.ServeCmd {
		return main.ServeCmd{
			Port:      8080,
			Size:      64,
			Repeats:   []int{1},
			AddKey:    "POST",
			CheckKey:  "GET",
			DeleteKey: "DELETE",
		}
	}

	t.Run("accepts valid configuration", func(t *testing.T) {
		t.Parallel()

		c := valid()
		assert.NoError(t, c.Validate())
	})

	tests := []struct {
		name   string
		mutate func(c *main.ServeCmd)
	}{
		{"privileged port", func(c *main.ServeCmd) { c.Port = 80 }},
		{"port too large", func(c *main.ServeCmd) { c.Port = 70000 }},
		{"zero size", func(c *main.ServeCmd) { c.Size = 0 }},
		{"no repeats", func(c *main.ServeCmd) { c.Repeats = nil }},
		{"zero repeat", func(c *main.ServeCmd) { c.Repeats = []int{1, 0} }},
		{"negative rate", func(c *main.ServeCmd) { c.Rate = -1 }},
		{"duplicate keys", func(c *main.ServeCmd) { c.CheckKey = "POST" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := valid()
			tt.mutate(&c)

			assert.Error(t, c.Validate())
		})
	}
}

func TestServeCmd_Keys(t *testing.T) {
	t.Parallel()

	c := main.ServeCmd{AddKey: "A", CheckKey: "C", DeleteKey: "D"}
	assert.Equal(t, "A", c.Keys().Add)

	c.NumericKeys = true
	assert.Equal(t, "1", c.Keys().Add)
	assert.Equal(t, "2", c.Keys().Check)
	assert.Equal(t, "3", c.Keys().Delete)
}

func TestServeCmd_HashChoicesMatchHashKinds(t *testing.T) {
	t.Parallel()

	field, ok := reflect.TypeOf(main.ServeCmd{}).FieldByName("Hash")
	require.True(t, ok)

	var kinds []string
	for _, k := range blacklist.HashKinds() {
		kinds = append(kinds, string(k))
	}
	assert.Equal(t, strings.Join(kinds, ","), field.Tag.Get("enum"))
	assert.Contains(t, kinds, field.Tag.Get("default"))
}
