package congestion_test

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/golang/mock/gomock"

	"github.com/private-octopus/picocubic/congestion"
	mockcongestion "github.com/private-octopus/picocubic/internal/mocks/congestion"
	"github.com/private-octopus/picocubic/protocol"
)

var _ = Describe("Registry", func() {
	It("returns the registered algorithm by its id", func() {
		r := congestion.NewRegistry()
		alg := congestion.NewCubicAlgorithm(10*congestion.DefaultMSS, nil)
		r.Register(alg)

		got, ok := r.Lookup(congestion.AlgorithmID)
		Expect(ok).To(BeTrue())
		Expect(got).To(BeIdenticalTo(alg))
	})

	It("reports not-found for an unregistered id", func() {
		r := congestion.NewRegistry()
		_, ok := r.Lookup(0xdeadbeef)
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Algorithm", func() {
	var ctrl *gomock.Controller

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("Init installs a congestion state and sets the initial cwnd on the path", func() {
		mock := mockcongestion.NewMockPathView(ctrl)
		gomock.InOrder(
			mock.EXPECT().SetCongestionState(gomock.Any()),
			mock.EXPECT().SetCwnd(protocol.ByteCount(10*congestion.DefaultMSS)),
		)

		alg := congestion.NewCubicAlgorithm(10*congestion.DefaultMSS, nil)
		alg.Init(mock)
	})

	It("Delete clears the path's congestion state", func() {
		mock := mockcongestion.NewMockPathView(ctrl)
		mock.EXPECT().SetCongestionState(nil)

		alg := congestion.NewCubicAlgorithm(10*congestion.DefaultMSS, nil)
		alg.Delete(mock)
	})

	It("Notify is a no-op against a path with no installed controller", func() {
		mock := mockcongestion.NewMockPathView(ctrl)
		mock.EXPECT().CongestionState().Return(nil)

		alg := congestion.NewCubicAlgorithm(10*congestion.DefaultMSS, nil)
		alg.Notify(mock, congestion.Acknowledgement, time.Millisecond, 0, 0, time.Now())
	})
})
