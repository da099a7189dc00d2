package telemetry

import (
	"context"
	"net"
	"time"

	"github.com/francoispqt/gojay"
	"golang.org/x/sync/errgroup"

	"github.com/private-octopus/picocubic/qerr"
	"github.com/private-octopus/picocubic/utils"
)

// command is the single-byte prefix the relay protocol uses to distinguish
// requests. Responses always begin with "OK" or "KO".
type command byte

const (
	cmdRegister     command = '1'
	cmdSendStat     command = '2'
	cmdReload       command = '3'
	cmdRemove       command = '4'
	cmdReloadAll    command = '5'
	cmdChangeConfig command = '6'
)

const responseDeadline = 50 * time.Millisecond

// Client is a fire-and-forget UDP client for the relay protocol. Sends are
// handed to a small fixed pool of worker goroutines managed by an
// errgroup.Group; a caller that can't get a worker slot within the queue's
// capacity drops the command and logs it locally rather than blocking.
type Client struct {
	conn  net.PacketConn
	raddr net.Addr
	jobs  chan job
	group *errgroup.Group
}

type job struct {
	cmd     command
	payload []byte
}

// NewClient dials a relay at raddr (host:port) and starts workers
// background goroutines to drain the send queue. The underlying socket's
// send buffer is best-effort widened via setSendBuffer; failure to do so
// is logged and otherwise ignored.
func NewClient(raddr string, workers int) (*Client, error) {
	lc := net.ListenConfig{Control: setSendBuffer}
	conn, err := lc.ListenPacket(context.Background(), "udp", ":0")
	if err != nil {
		return nil, err
	}
	addr, err := net.ResolveUDPAddr("udp", raddr)
	if err != nil {
		conn.Close()
		return nil, err
	}

	c := &Client{
		conn:  conn,
		raddr: addr,
		jobs:  make(chan job, 64),
	}
	g := &errgroup.Group{}
	c.group = g
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		g.Go(c.runWorker)
	}
	return c, nil
}

func (c *Client) runWorker() error {
	for j := range c.jobs {
		c.send(j)
	}
	return nil
}

// Close stops accepting new work, drains in-flight sends, and closes the
// socket. It does not cancel sends already queued.
func (c *Client) Close() error {
	close(c.jobs)
	c.group.Wait()
	return c.conn.Close()
}

func (c *Client) enqueue(cmd command, payload []byte) {
	select {
	case c.jobs <- job{cmd: cmd, payload: payload}:
	default:
		logFailure("telemetry: dropping %c command, relay queue full (%s)", byte(cmd), qerr.TelemetryBacklogged)
	}
}

func (c *Client) send(j job) {
	buf := make([]byte, 0, len(j.payload)+1)
	buf = append(buf, byte(j.cmd))
	buf = append(buf, j.payload...)

	if _, err := c.conn.WriteTo(buf, c.raddr); err != nil {
		logFailure("telemetry: send failed: %v (%s)", err, qerr.TelemetryUnreachable)
		return
	}

	c.conn.SetReadDeadline(time.Now().Add(responseDeadline))
	resp := make([]byte, 256)
	n, _, err := c.conn.ReadFrom(resp)
	if err != nil {
		logFailure("telemetry: no response: %v (%s)", err, qerr.TelemetryTimeout)
		return
	}
	if n < 2 {
		logFailure("telemetry: short response (%s)", qerr.TelemetryMalformedResponse)
		return
	}
	switch string(resp[:2]) {
	case "OK":
	case "KO":
		logFailure("telemetry: relay rejected command: %s (%s)", resp[:n], qerr.TelemetryRejected)
	default:
		logFailure("telemetry: unrecognized response %q (%s)", resp[:n], qerr.TelemetryMalformedResponse)
	}
}

type registerPayload struct {
	ConfPath string
}

func (p *registerPayload) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("conf_path", p.ConfPath)
}
func (p *registerPayload) IsNil() bool { return p == nil }

type statPayload struct {
	Name  string
	Value float64
}

func (p *statPayload) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", p.Name)
	enc.Float64Key("value", p.Value)
}
func (p *statPayload) IsNil() bool { return p == nil }

// Register implements Sink.
func (c *Client) Register(ctx context.Context, confPath string) error {
	payload, err := gojay.Marshal(&registerPayload{ConfPath: confPath})
	if err != nil {
		return err
	}
	c.enqueue(cmdRegister, payload)
	return nil
}

// Log implements Sink. Unlike Register and Stat, a log line never crosses
// the wire to the relay: it is dispatched straight to the local logger,
// matching the reference relay's own local-syslog treatment of log-emit.
func (c *Client) Log(ctx context.Context, level, msg string) {
	logLocal(level, msg)
}

// Stat implements Sink.
func (c *Client) Stat(ctx context.Context, name string, value float64) {
	payload, err := gojay.Marshal(&statPayload{Name: name, Value: value})
	if err != nil {
		logFailure("telemetry: failed to encode stat %s: %v", name, err)
		return
	}
	c.enqueue(cmdSendStat, payload)
}

// Reload asks the relay to reload this job's statistic configuration.
func (c *Client) Reload(ctx context.Context) { c.enqueue(cmdReload, nil) }

// Remove deregisters this job's statistics from the relay.
func (c *Client) Remove(ctx context.Context) { c.enqueue(cmdRemove, nil) }

// ReloadAll asks the relay to reload every registered job's configuration.
func (c *Client) ReloadAll(ctx context.Context) { c.enqueue(cmdReloadAll, nil) }

// ChangeConfig toggles the relay's storage/broadcast behavior.
func (c *Client) ChangeConfig(ctx context.Context, storage, broadcast bool) {
	payload, err := gojay.Marshal(&changeConfigPayload{Storage: storage, Broadcast: broadcast})
	if err != nil {
		logFailure("telemetry: failed to encode change-config: %v", err)
		return
	}
	c.enqueue(cmdChangeConfig, payload)
}

type changeConfigPayload struct {
	Storage   bool
	Broadcast bool
}

func (p *changeConfigPayload) MarshalJSONObject(enc *gojay.Encoder) {
	enc.BoolKey("storage", p.Storage)
	enc.BoolKey("broadcast", p.Broadcast)
}
func (p *changeConfigPayload) IsNil() bool { return p == nil }
