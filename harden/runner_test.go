package harden

import (
	"context"
	"errors"

	"github.com/zonesec/zonesec/cloudflare"
	"github.com/zonesec/zonesec/log"
	"github.com/zonesec/zonesec/preload"

	ginkgo "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Runner", func() {
	var (
		provider  *fakeProvider
		submitter *fakeSubmitter
		sut       *Runner
		ctx       context.Context
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		provider = newFakeProvider()
		provider.zones["example.com"] = cloudflare.Zone{ID: "Z1", Name: "example.com"}
		submitter = &fakeSubmitter{result: preload.Result{Status: preload.StatusSuccess}}

		entry, _ := log.NewMockEntry()
		sut = NewRunner(provider, submitter, NewStatusReporter(entry), defaultOptions())
	})

	ginkgo.When("the zone does not exist", func() {
		ginkgo.It("should fail fatally without touching anything", func() {
			_, err := sut.Run(ctx, "missing.example")

			Expect(err).Should(MatchError(cloudflare.ErrZoneNotFound))
			Expect(provider.recordQueries).Should(BeEmpty())
			Expect(provider.dnssec).Should(BeEmpty())
			Expect(submitter.domains).Should(BeEmpty())
		})
	})

	ginkgo.When("the zone is untouched", func() {
		ginkgo.It("should apply every operation and submit the domain", func() {
			report, err := sut.Run(ctx, "example.com")
			Expect(err).Should(Succeed())

			Expect(report.Zone).Should(Equal(Zone{Name: "example.com", ID: "Z1"}))
			Expect(report.Outcomes).Should(HaveLen(9))

			for _, outcome := range report.Outcomes {
				Expect(outcome.Result).Should(Equal(ResultApplied), outcome.OperationID)
			}

			Expect(provider.dnssec["Z1"]).Should(Equal("active"))
			Expect(provider.settings).Should(HaveLen(6))
			Expect(submitter.domains).Should(Equal([]string{"example.com"}))
			Expect(report.Err()).Should(Succeed())
		})
	})

	ginkgo.When("the run is repeated against unchanged remote state", func() {
		ginkgo.It("should skip the record creations and reapply the idempotent patches", func() {
			_, err := sut.Run(ctx, "example.com")
			Expect(err).Should(Succeed())

			report, err := sut.Run(ctx, "example.com")
			Expect(err).Should(Succeed())

			byID := map[string]Outcome{}
			for _, outcome := range report.Outcomes {
				byID[outcome.OperationID] = outcome
			}

			Expect(byID["aaaa placeholder"].Result).Should(Equal(ResultSkipped))
			Expect(byID["aaaa placeholder"].Detail).Should(ContainSubstring("AAAA record"))
			Expect(byID["spf"].Result).Should(Equal(ResultSkipped))
			Expect(byID["dnssec"].Result).Should(Equal(ResultApplied))
			Expect(byID["ssl"].Result).Should(Equal(ResultApplied))

			// no duplicate records were created
			Expect(provider.records["Z1"]).Should(HaveLen(2))
		})
	})

	ginkgo.When("individual operations fail", func() {
		ginkgo.BeforeEach(func() {
			provider.failDNSSEC = errors.New("dnssec patch rejected")
			provider.failSetting["tls_1_3"] = errors.New("tls_1_3 patch rejected")
		})

		ginkgo.It("should continue past the failures and still submit the domain", func() {
			report, err := sut.Run(ctx, "example.com")
			Expect(err).Should(Succeed())

			byID := map[string]Outcome{}
			for _, outcome := range report.Outcomes {
				byID[outcome.OperationID] = outcome
			}

			Expect(byID["dnssec"].Result).Should(Equal(ResultFailed))
			Expect(byID["tls_1_3"].Result).Should(Equal(ResultFailed))
			Expect(byID["aaaa placeholder"].Result).Should(Equal(ResultApplied))
			Expect(byID["spf"].Result).Should(Equal(ResultApplied))
			Expect(submitter.domains).Should(Equal([]string{"example.com"}))

			runErr := report.Err()
			Expect(runErr).Should(HaveOccurred())
			Expect(runErr.Error()).Should(ContainSubstring("dnssec patch rejected"))
			Expect(runErr.Error()).Should(ContainSubstring("tls_1_3 patch rejected"))
		})
	})

	ginkgo.When("the preload registry rejects the domain", func() {
		ginkgo.BeforeEach(func() {
			submitter.result = preload.Result{
				Status: preload.StatusRemoteErrors,
				Errors: []preload.Notice{{Summary: "Missing HSTS header", Message: "no header observed"}},
			}
		})

		ginkgo.It("should complete the run and surface the rejection in the report", func() {
			report, err := sut.Run(ctx, "example.com")
			Expect(err).Should(Succeed())

			runErr := report.Err()
			Expect(runErr).Should(HaveOccurred())
			Expect(runErr.Error()).Should(ContainSubstring("Missing HSTS header"))
		})
	})
})
