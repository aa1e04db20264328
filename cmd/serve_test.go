package cmd

import (
	"net"
	"strings"
	"testing"
)

func TestAnnounceShowsBoundAddress(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = ln.Close() }()

	var b strings.Builder
	announce(&b, ln.Addr(), "launches.csv")

	out := b.String()
	if !strings.Contains(out, "http://"+ln.Addr().String()) {
		t.Errorf("banner %q does not show the bound address %s", out, ln.Addr())
	}
	if strings.Contains(out, ":0\n") {
		t.Errorf("banner shows the unbound port: %q", out)
	}
}
