package congestion

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/private-octopus/picocubic/protocol"
)

// These specs construct controller state directly (same package, so the
// unexported State fields are reachable) for the two concrete scenarios
// that need a state impossible to reach through a short, readable sequence
// of Notify calls alone: fast convergence from an explicit last_max_cwnd,
// and the New-Reno floor overtaking an in-progress cubic epoch.
var _ = Describe("concrete scenarios needing direct state construction", func() {
	var (
		path *Path
		now  time.Time
	)

	BeforeEach(func() {
		path = NewPath(nil)
		now = time.Unix(2_000_000, 0)
	})

	It("scenario 4: fast convergence backs last_max_cwnd off to BetaLastMax*cwnd before applying Beta*cwnd", func() {
		// Initial window (and thus the loss floor) well below the expected
		// 105_000, so the floor does not mask the Beta backoff.
		Init(path, 10*DefaultMSS, nil)
		path.SetCwnd(150_000)

		c := path.CongestionState()
		c.state.algState = CongestionAvoidance
		c.state.lastMaxCwnd = 200_000

		Notify(path, Repeat, 50*time.Millisecond, 0, 1, now)

		wantLastMax := protocol.ByteCount(BetaLastMax(1) * 150_000)
		wantCwnd := protocol.ByteCount(Beta(1) * 150_000)
		Expect(c.state.lastMaxCwnd).To(Equal(wantLastMax))
		Expect(path.Cwnd()).To(Equal(wantCwnd))
		Expect(c.state.EpochActive()).To(BeFalse())
	})

	It("scenario 6: the New-Reno floor dominates when it exceeds the cubic target", func() {
		Init(path, 100_000, nil)
		path.SetCwnd(100_000)
		path.SetBytesInTransit(100_000)
		path.SetRTTMin(50 * time.Millisecond)

		c := path.CongestionState()
		c.state.algState = CongestionAvoidance
		c.state.epochStartTime = now // epoch already active: processAck won't reinitialize it
		c.state.originCwnd = 100_000
		c.state.timeOfOrigin = 0
		c.state.estimatedNRCwnd = 100_000
		c.state.lastMaxCwnd = 100_000

		const ackedBytes = protocol.ByteCount(50_000)
		estimatedNRCwndBefore := c.state.estimatedNRCwnd
		want := estimatedNRCwndBefore + protocol.ByteCount(
			float64(ackedBytes)*Alpha(1)*float64(DefaultMSS)/float64(estimatedNRCwndBefore),
		)

		Notify(path, Acknowledgement, 50*time.Millisecond, ackedBytes, 0, now)

		// The cubic target alone (elapsed == timeOfOrigin == 0) would have
		// left cwnd at originCwnd; the New-Reno estimate, having already
		// grown past it, must win instead.
		Expect(c.state.LastTargetCwnd()).To(Equal(protocol.ByteCount(100_000)))
		Expect(want).To(BeNumerically(">", c.state.LastTargetCwnd()))
		Expect(path.Cwnd()).To(Equal(want))
		Expect(path.Cwnd()).To(Equal(c.state.EstimatedNRCwnd()))
	})

	It("grows cwnd monotonically, ACK over ACK, in congestion avoidance with no losses", func() {
		Init(path, 50_000, nil)
		path.SetCwnd(50_000)
		path.SetBytesInTransit(50_000)
		path.SetRTTMin(50 * time.Millisecond)

		c := path.CongestionState()
		c.state.algState = CongestionAvoidance

		t := now
		for i := 0; i < 20; i++ {
			t = t.Add(50 * time.Millisecond)
			before := path.Cwnd()
			path.SetBytesInTransit(path.Cwnd())
			Notify(path, Acknowledgement, 50*time.Millisecond, protocol.DefaultTCPMSS, 0, t)
			Expect(path.Cwnd()).To(BeNumerically(">=", before))
		}

		samples := c.History()
		Expect(len(samples)).To(BeNumerically(">", 1))
		for i := 1; i < len(samples); i++ {
			Expect(samples[i].Cwnd).To(BeNumerically(">=", samples[i-1].Cwnd))
		}
	})
})
