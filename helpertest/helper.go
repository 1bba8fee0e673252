package helpertest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"github.com/miekg/dns"
	"github.com/onsi/ginkgo/v2"
)

const (
	A     = dns.Type(dns.TypeA)
	AAAA  = dns.Type(dns.TypeAAAA)
	CNAME = dns.Type(dns.TypeCNAME)
	MX    = dns.Type(dns.TypeMX)
	TXT   = dns.Type(dns.TypeTXT)
)

// TempStringFile creates a temp file with the passed lines. The file is
// removed after the current spec.
func TempStringFile(name string, lines ...string) string {
	dir, err := os.MkdirTemp("", "zonesec")
	if err != nil {
		ginkgo.Fail(fmt.Sprintf("could not create temp folder: %s", err))
	}

	ginkgo.DeferCleanup(func() { _ = os.RemoveAll(dir) })

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o600); err != nil {
		ginkgo.Fail(fmt.Sprintf("could not write temp file: %s", err))
	}

	return path
}

// TestServer creates a temp http server which answers every request with
// the passed status and body.
func TestServer(status int, body string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		rw.WriteHeader(status)

		if _, err := rw.Write([]byte(body)); err != nil {
			ginkgo.Fail(fmt.Sprintf("can't write response: %s", err))
		}
	}))

	ginkgo.DeferCleanup(srv.Close)

	return srv
}
