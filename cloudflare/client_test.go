package cloudflare

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	var (
		sut      *Client
		ts       *httptest.Server
		mockFn   func(w http.ResponseWriter, r *http.Request)
		lastReq  *http.Request
		lastBody []byte
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		lastReq = nil
		lastBody = nil
		mockFn = func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success": true, "errors": [], "result": []}`))
		}
	})

	JustBeforeEach(func() {
		ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastReq = r
			lastBody, _ = io.ReadAll(r.Body)
			mockFn(w, r)
		}))
		DeferCleanup(ts.Close)

		sut = NewClient(TokenAuth{Token: "test-token"}, WithBaseURL(ts.URL))
	})

	Describe("ZoneIDByName", func() {
		When("the zone exists", func() {
			BeforeEach(func() {
				mockFn = func(w http.ResponseWriter, _ *http.Request) {
					_, _ = w.Write([]byte(
						`{"success": true, "errors": [],
						  "result": [{"id": "Z1", "name": "example.com"}, {"id": "Z2", "name": "example.com"}]}`))
				}
			})

			It("should return the first matching zone", func() {
				zone, err := sut.ZoneIDByName(ctx, "example.com")
				Expect(err).Should(Succeed())
				Expect(zone).Should(Equal(Zone{ID: "Z1", Name: "example.com"}))

				Expect(lastReq.URL.Path).Should(Equal("/zones"))
				Expect(lastReq.URL.Query().Get("name")).Should(Equal("example.com"))
			})

			It("should authenticate with the bearer token", func() {
				_, err := sut.ZoneIDByName(ctx, "example.com")
				Expect(err).Should(Succeed())
				Expect(lastReq.Header.Get("Authorization")).Should(Equal("Bearer test-token"))
			})
		})

		When("no zone matches", func() {
			It("should fail with ErrZoneNotFound", func() {
				_, err := sut.ZoneIDByName(ctx, "missing.example")
				Expect(err).Should(MatchError(ErrZoneNotFound))
				Expect(err.Error()).Should(ContainSubstring("missing.example"))
			})
		})

		When("the API rejects the call", func() {
			BeforeEach(func() {
				mockFn = func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusForbidden)
					_, _ = w.Write([]byte(
						`{"success": false,
						  "errors": [{"code": 9109, "message": "Invalid access token"}], "result": null}`))
				}
			})

			It("should surface the provider error detail", func() {
				_, err := sut.ZoneIDByName(ctx, "example.com")

				var apiErr *APIError
				Expect(err).Should(BeAssignableToTypeOf(apiErr))
				Expect(err.Error()).Should(Equal("9109: Invalid access token"))
			})
		})

		When("the endpoint is unreachable", func() {
			It("should return the transport error", func() {
				ts.Close()

				_, err := sut.ZoneIDByName(ctx, "example.com")
				Expect(err).Should(HaveOccurred())
			})
		})
	})

	Describe("DNSRecords", func() {
		BeforeEach(func() {
			mockFn = func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(
					`{"success": true, "errors": [],
					  "result": [{"id": "r1", "type": "TXT", "name": "example.com",
					              "content": "v=spf1 -all", "ttl": 120}]}`))
			}
		})

		It("should pass the filter as query parameters", func() {
			records, err := sut.DNSRecords(ctx, "Z1", RecordFilter{Type: "TXT", Name: "@"})
			Expect(err).Should(Succeed())
			Expect(records).Should(HaveLen(1))
			Expect(records[0].Content).Should(Equal("v=spf1 -all"))

			Expect(lastReq.URL.Path).Should(Equal("/zones/Z1/dns_records"))
			Expect(lastReq.URL.Query().Get("type")).Should(Equal("TXT"))
			Expect(lastReq.URL.Query().Get("name")).Should(Equal("@"))
		})
	})

	Describe("CreateDNSRecord", func() {
		It("should POST the record as JSON", func() {
			err := sut.CreateDNSRecord(ctx, "Z1", Record{
				Type: "AAAA", Name: "@", Content: "100::", TTL: 120, Proxied: true,
			})
			Expect(err).Should(Succeed())

			Expect(lastReq.Method).Should(Equal(http.MethodPost))
			Expect(lastReq.URL.Path).Should(Equal("/zones/Z1/dns_records"))
			Expect(lastReq.Header.Get("Content-Type")).Should(Equal("application/json"))

			var sent Record
			Expect(json.Unmarshal(lastBody, &sent)).Should(Succeed())
			Expect(sent).Should(Equal(Record{Type: "AAAA", Name: "@", Content: "100::", TTL: 120, Proxied: true}))
		})
	})

	Describe("SetDNSSEC", func() {
		It("should PATCH the dnssec status", func() {
			Expect(sut.SetDNSSEC(ctx, "Z1", "active")).Should(Succeed())

			Expect(lastReq.Method).Should(Equal(http.MethodPatch))
			Expect(lastReq.URL.Path).Should(Equal("/zones/Z1/dnssec"))
			Expect(string(lastBody)).Should(MatchJSON(`{"status": "active"}`))
		})
	})

	Describe("PatchZoneSetting", func() {
		It("should PATCH a scalar setting value", func() {
			Expect(sut.PatchZoneSetting(ctx, "Z1", "ssl", "strict")).Should(Succeed())

			Expect(lastReq.Method).Should(Equal(http.MethodPatch))
			Expect(lastReq.URL.Path).Should(Equal("/zones/Z1/settings/ssl"))
			Expect(string(lastBody)).Should(MatchJSON(`{"value": "strict"}`))
		})

		It("should PATCH a structured setting value", func() {
			value := map[string]any{
				"strict_transport_security": map[string]any{"enabled": true, "max_age": 31536000},
			}
			Expect(sut.PatchZoneSetting(ctx, "Z1", "security_header", value)).Should(Succeed())

			Expect(lastReq.URL.Path).Should(Equal("/zones/Z1/settings/security_header"))
			Expect(string(lastBody)).Should(MatchJSON(
				`{"value": {"strict_transport_security": {"enabled": true, "max_age": 31536000}}}`))
		})
	})

	Describe("KeyAuth", func() {
		JustBeforeEach(func() {
			sut = NewClient(KeyAuth{Email: "admin@example.com", Key: "secret"}, WithBaseURL(ts.URL))
		})

		It("should authenticate with email and key headers", func() {
			_, err := sut.DNSRecords(ctx, "Z1", RecordFilter{})
			Expect(err).Should(Succeed())

			Expect(lastReq.Header.Get("X-Auth-Email")).Should(Equal("admin@example.com"))
			Expect(lastReq.Header.Get("X-Auth-Key")).Should(Equal("secret"))
		})
	})
})
