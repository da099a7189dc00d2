package congestion_test

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/private-octopus/picocubic/congestion"
	"github.com/private-octopus/picocubic/protocol"
)

var _ = Describe("Controller", func() {
	var (
		path *congestion.Path
		now  time.Time
	)

	const initialCwnd = 10 * congestion.DefaultMSS

	BeforeEach(func() {
		path = congestion.NewPath(nil)
		now = time.Unix(1_000_000, 0)
		congestion.Init(path, initialCwnd, nil)
	})

	It("grows by the full acked byte count during slow start", func() {
		congestion.Notify(path, congestion.Acknowledgement, 50*time.Millisecond, congestion.DefaultMSS, 0, now)
		Expect(path.Cwnd()).To(Equal(initialCwnd + congestion.DefaultMSS))
	})

	It("leaves slow start and backs off to Beta(1)*cwnd on the first loss", func() {
		// Grow well above the initial window first, so the backoff lands
		// above the initial-window floor.
		congestion.Notify(path, congestion.Acknowledgement, 50*time.Millisecond, 10*congestion.DefaultMSS, 0, now)
		cwndAtLoss := path.Cwnd()
		congestion.Notify(path, congestion.Repeat, 50*time.Millisecond, 0, 1, now)

		want := protocol.ByteCount(congestion.Beta(1) * float64(cwndAtLoss))
		Expect(path.Cwnd()).To(Equal(want))
		Expect(path.CongestionState().State().InSlowStart()).To(BeFalse())
	})

	It("scales the backoff toward 1 as stream count grows", func() {
		n := uint64(4)
		multi := congestion.NewPath(&n)
		congestion.Init(multi, initialCwnd, nil)
		congestion.Notify(multi, congestion.Acknowledgement, 50*time.Millisecond, 10*congestion.DefaultMSS, 0, now)

		cwndAtLoss := multi.Cwnd()
		congestion.Notify(multi, congestion.Repeat, 50*time.Millisecond, 0, 1, now)

		want := protocol.ByteCount(congestion.Beta(4) * float64(cwndAtLoss))
		Expect(multi.Cwnd()).To(Equal(want))
		Expect(congestion.Beta(4)).To(BeNumerically(">", congestion.Beta(1)))
	})

	It("backs off by Beta again when a new loss arrives before cwnd re-reaches the previous max", func() {
		// Grow well above the initial window, so neither backoff below is
		// clamped by the initial-window floor.
		congestion.Notify(path, congestion.Acknowledgement, 50*time.Millisecond, 30*congestion.DefaultMSS, 0, now)

		// First loss establishes lastMaxCwnd.
		congestion.Notify(path, congestion.Repeat, 50*time.Millisecond, 0, 1, now)
		afterFirstLoss := path.Cwnd()

		// A second loss, without cwnd having grown back near the previous
		// max, takes the fast-convergence branch (BetaLastMax applied to
		// last_max_cwnd, checked directly in the internal scenario 4 spec);
		// cwnd itself still backs off by Beta.
		congestion.Notify(path, congestion.Repeat, 50*time.Millisecond, 0, 2, now)

		want := protocol.ByteCount(congestion.Beta(1) * float64(afterFirstLoss))
		Expect(path.Cwnd()).To(Equal(want))
	})

	It("freezes the epoch when the path is application-limited", func() {
		congestion.Notify(path, congestion.Repeat, 50*time.Millisecond, 0, 1, now)
		path.SetRTTMin(50 * time.Millisecond)

		// bytesInTransit below cwnd: the sender didn't fill the window.
		path.SetBytesInTransit(path.Cwnd() / 2)
		congestion.Notify(path, congestion.Acknowledgement, 50*time.Millisecond, congestion.DefaultMSS, 0, now)

		Expect(path.CongestionState().State().EpochActive()).To(BeFalse())
	})

	It("never drops cwnd below the initial window, the floor applied on loss", func() {
		for i := 0; i < 50; i++ {
			congestion.Notify(path, congestion.Repeat, 50*time.Millisecond, 0, protocol.PacketNumber(i), now)
		}
		Expect(path.Cwnd()).To(BeNumerically(">=", initialCwnd))
	})

	It("recomputes pacing exactly once per notification", func() {
		congestion.Notify(path, congestion.Acknowledgement, 50*time.Millisecond, congestion.DefaultMSS, 0, now)
		congestion.Notify(path, congestion.Acknowledgement, 50*time.Millisecond, congestion.DefaultMSS, 0, now)
		Expect(path.PacingRecomputeCount()).To(Equal(2))
	})

	It("is safe to Delete twice", func() {
		congestion.Delete(path)
		Expect(path.CongestionState()).To(BeNil())
		congestion.Delete(path)
		Expect(path.CongestionState()).To(BeNil())
	})

	It("ignores notifications once the controller has been deleted", func() {
		congestion.Delete(path)
		before := path.Cwnd()
		congestion.Notify(path, congestion.Acknowledgement, 50*time.Millisecond, congestion.DefaultMSS, 0, now)
		Expect(path.Cwnd()).To(Equal(before))
	})

	It("leaves cwnd unchanged across two consecutive spurious-repeat notifications", func() {
		before := path.Cwnd()
		congestion.Notify(path, congestion.SpuriousRepeat, 50*time.Millisecond, 0, 0, now)
		congestion.Notify(path, congestion.SpuriousRepeat, 50*time.Millisecond, 0, 0, now)
		Expect(path.Cwnd()).To(Equal(before))
	})
})
