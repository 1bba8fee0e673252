package cloudflare

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Credentials", func() {
	Describe("CredentialsFrom", func() {
		It("should prefer the API token", func() {
			creds, err := CredentialsFrom("tok", "admin@example.com", "key")
			Expect(err).Should(Succeed())
			Expect(creds).Should(Equal(TokenAuth{Token: "tok"}))
			Expect(creds.String()).Should(Equal("API token"))
		})

		It("should fall back to email and key", func() {
			creds, err := CredentialsFrom("", "admin@example.com", "key")
			Expect(err).Should(Succeed())
			Expect(creds).Should(Equal(KeyAuth{Email: "admin@example.com", Key: "key"}))
			Expect(creds.String()).Should(Equal("API key and email"))
		})

		It("should fail when only one half of the key pair is set", func() {
			_, err := CredentialsFrom("", "admin@example.com", "")
			Expect(err).Should(MatchError(ErrNoCredentials))
		})

		It("should fail without any credentials", func() {
			_, err := CredentialsFrom("", "", "")
			Expect(err).Should(MatchError(ErrNoCredentials))
		})
	})
})
