// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package eb_test

import (
	"net"
	"reflect"
	"testing"
	"time"

	"github.com/litexsoc/socdiag/eb"
	"github.com/litexsoc/socdiag/sim"
)

func TestCodec(t *testing.T) {
	for _, p := range []*eb.Packet{
		{Probe: true},
		{ProbeReply: true},
		{Records: []eb.Record{{
			WriteBase: 0xe000b000,
			Values:    []uint32{1},
		}}},
		{Records: []eb.Record{{
			ReadBase: 0x12345678,
			Addrs:    []uint32{0xe000b010, 0xe000b014},
		}}},
		{Records: []eb.Record{{
			WriteBase: 0xe0001800,
			Values:    []uint32{0xffffffff, 0, 1},
			ReadBase:  0,
			Addrs:     []uint32{0xe0001810},
		}}},
	} {
		got, err := eb.Decode(p.Encode())
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, p) {
			t.Errorf("%+v != %+v", got, p)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, b := range [][]byte{
		nil,
		{0x4e},
		{0xde, 0xad, 0x10, 0x44},
		{0x4e, 0x6f, 0x20, 0x44},
		{0x4e, 0x6f, 0x10, 0x44, 0x00, 0x0f, 1, 0},
		{0x4e, 0x6f, 0x10, 0x44, 0x00, 0x0f, 0, 2, 0, 0, 0, 0},
	} {
		if _, err := eb.Decode(b); err == nil {
			t.Errorf("% x: no error", b)
		}
	}
}

func TestClient(t *testing.T) {
	soc := sim.New()
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	go sim.Serve(conn, soc)
	defer conn.Close()

	c, err := eb.Dial(conn.LocalAddr().String())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	scratch, err := soc.Map().Reg("ctrl_scratch")
	if err != nil {
		t.Fatal(err)
	}
	if err = c.Write32(scratch.Addr, 0x5aa55aa5); err != nil {
		t.Fatal(err)
	}
	v, err := c.Read32(scratch.Addr)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x5aa55aa5 {
		t.Fatalf("scratch %#x", v)
	}
}

func TestDialNoAnswer(t *testing.T) {
	defer func(n int) { eb.Probes = n }(eb.Probes)
	defer func(d time.Duration) { eb.Timeout = d }(eb.Timeout)
	eb.Probes = 1
	eb.Timeout = 50 * time.Millisecond

	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := conn.LocalAddr().String()
	conn.Close()
	if _, err = eb.Dial(addr); err == nil {
		t.Fatal("dial dead address: no error")
	}
}
