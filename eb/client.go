// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package eb

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/jpillora/backoff"
	"github.com/platinasystems/log"
)

const DefaultPort = "20000"

var (
	// Timeout bounds each request/reply exchange.
	Timeout = 2 * time.Second

	// Probes is the number of discovery attempts before Dial gives up.
	Probes = 5
)

// Client is a csr.Bus reaching the SoC through its Etherbone UDP bridge.
type Client struct {
	conn  *net.UDPConn
	debug bool
}

// Dial probes the bridge at "HOST[:PORT]" until it answers.
func Dial(addr string) (*Client, error) {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, DefaultPort)
	}
	ua, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}
	conn, err := net.DialUDP("udp", nil, ua)
	if err != nil {
		return nil, err
	}
	c := &Client{
		conn:  conn,
		debug: len(os.Getenv("SOCDIAG_DEBUG")) > 0,
	}
	b := &backoff.Backoff{
		Min:    100 * time.Millisecond,
		Max:    2 * time.Second,
		Factor: 2,
	}
	for i := 0; ; i++ {
		err = c.probe()
		if err == nil {
			break
		}
		if i == Probes-1 {
			conn.Close()
			return nil, fmt.Errorf("%s: %v", addr, err)
		}
		time.Sleep(b.Duration())
	}
	return c, nil
}

func (c *Client) Close() error { return c.conn.Close() }

func (c *Client) probe() error {
	p, err := c.xfer(&Packet{Probe: true})
	if err != nil {
		return err
	}
	if !p.ProbeReply {
		return fmt.Errorf("no probe reply")
	}
	return nil
}

func (c *Client) Read32(addr uint32) (uint32, error) {
	p, err := c.xfer(&Packet{Records: []Record{{Addrs: []uint32{addr}}}})
	if err != nil {
		return 0, err
	}
	if len(p.Records) == 0 || len(p.Records[0].Values) == 0 {
		return 0, fmt.Errorf("read %#x: empty reply", addr)
	}
	v := p.Records[0].Values[0]
	if c.debug {
		log.Print("debug", "eb read", fmt.Sprintf("%#x: %#x", addr, v))
	}
	return v, nil
}

func (c *Client) Write32(addr, value uint32) error {
	if c.debug {
		log.Print("debug", "eb write",
			fmt.Sprintf("%#x <- %#x", addr, value))
	}
	req := &Packet{Records: []Record{{
		WriteBase: addr,
		Values:    []uint32{value},
	}}}
	_, err := c.conn.Write(req.Encode())
	return err
}

func (c *Client) xfer(req *Packet) (*Packet, error) {
	if _, err := c.conn.Write(req.Encode()); err != nil {
		return nil, err
	}
	if err := c.conn.SetReadDeadline(time.Now().Add(Timeout)); err != nil {
		return nil, err
	}
	buf := make([]byte, MTU)
	n, err := c.conn.Read(buf)
	if err != nil {
		return nil, err
	}
	return Decode(buf[:n])
}
