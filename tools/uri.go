package tools

import (
	"encoding/hex"
	"fmt"
	"strings"

	enc "github.com/named-data/ndnx/std/encoding"
	"github.com/named-data/ndnx/std/log"
	"github.com/spf13/cobra"
)

// UriTool converts between component values and their URI text.
type UriTool struct {
	hex bool
}

func (t *UriTool) String() string {
	return "uri"
}

// EncodeComponent prints the URI form of a hex-encoded component value.
func EncodeComponent(hexVal string) (string, error) {
	val, err := hex.DecodeString(strings.ReplaceAll(hexVal, " ", ""))
	if err != nil {
		return "", err
	}
	return enc.PrintComponentURI(val), nil
}

// DecodeComponent parses the URI form of a component and returns its
// value in hex. A segment that yields no component returns ok false.
func DecodeComponent(uri string) (val string, ok bool, err error) {
	c, err := enc.ParseComponentURI(uri)
	if err != nil {
		return "", false, err
	}
	comp, ok := c.Get()
	if !ok {
		return "", false, nil
	}
	return hex.EncodeToString(comp.Val), true, nil
}

func (t *UriTool) encode(cmd *cobra.Command, args []string) {
	val := args[0]
	if !t.hex {
		val = hex.EncodeToString([]byte(args[0]))
	}
	out, err := EncodeComponent(val)
	if err != nil {
		log.Fatal(t, "Invalid hex value", "value", args[0], "err", err)
		return
	}
	fmt.Println(out)
}

func (t *UriTool) decode(cmd *cobra.Command, args []string) {
	val, ok, err := DecodeComponent(args[0])
	if err != nil {
		log.Fatal(t, "Invalid component URI", "uri", args[0], "err", err)
		return
	}
	if !ok {
		fmt.Println("(no component)")
		return
	}
	fmt.Println(val)
}

// NameTool normalizes name URIs.
type NameTool struct {
	wire bool
}

func (t *NameTool) String() string {
	return "name"
}

// NormalizeName parses a name URI and prints it in canonical form.
// With wire set, the hex of the <Name> encoding follows on a second line.
func NormalizeName(uri string, wire bool) (string, error) {
	name, err := enc.NameFromStr(uri)
	if err != nil {
		return "", err
	}
	if !wire {
		return name.URI(), nil
	}
	return name.URI() + "\n" + hex.EncodeToString(name.Bytes()), nil
}

func (t *NameTool) run(cmd *cobra.Command, args []string) {
	out, err := NormalizeName(args[0], t.wire)
	if err != nil {
		log.Fatal(t, "Invalid name", "name", args[0], "err", err)
		return
	}
	fmt.Println(out)
}
