// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package eb speaks Etherbone to a SoC's UDP Wishbone bridge. Only the
// subset that the gateware bridge implements is encoded: one record per
// packet, 32 bit addresses and data, big endian on the wire.
package eb

import (
	"encoding/binary"
	"fmt"
)

const (
	Magic   = 0x4e6f
	Version = 1

	// MTU bounds a reply for the largest record we ever request.
	MTU = 1500
)

// packet header flag bits of byte 2
const (
	pfBit = 1 << 0 // probe
	prBit = 1 << 1 // probe reply
	nrBit = 1 << 2 // no reads
)

// record header flag bits of byte 0
const (
	cycBit = 1 << 3
	wcaBit = 1 << 2
	bcaBit = 1 << 7
)

// Record is one Wishbone burst: writes of Values from WriteBase on, and
// reads of Addrs returned to ReadBase.
type Record struct {
	WriteBase uint32
	Values    []uint32
	ReadBase  uint32
	Addrs     []uint32
}

type Packet struct {
	Probe      bool
	ProbeReply bool
	Records    []Record
}

func (p *Packet) Encode() []byte {
	b := make([]byte, 4, 64)
	binary.BigEndian.PutUint16(b, Magic)
	b[2] = Version << 4
	if p.Probe {
		b[2] |= pfBit
	}
	if p.ProbeReply {
		b[2] |= prBit
	}
	b[3] = 0x44 // 32 bit address and port sizes
	for _, r := range p.Records {
		hdr := [4]byte{0, 0x0f, byte(len(r.Values)), byte(len(r.Addrs))}
		b = append(b, hdr[:]...)
		if len(r.Values) > 0 {
			b = append32(b, r.WriteBase)
			for _, v := range r.Values {
				b = append32(b, v)
			}
		}
		if len(r.Addrs) > 0 {
			b = append32(b, r.ReadBase)
			for _, a := range r.Addrs {
				b = append32(b, a)
			}
		}
	}
	return b
}

func Decode(b []byte) (*Packet, error) {
	if len(b) < 4 {
		return nil, fmt.Errorf("etherbone: %d byte packet", len(b))
	}
	if binary.BigEndian.Uint16(b) != Magic {
		return nil, fmt.Errorf("etherbone: bad magic %#x",
			binary.BigEndian.Uint16(b))
	}
	if b[2]>>4 != Version {
		return nil, fmt.Errorf("etherbone: version %d", b[2]>>4)
	}
	p := &Packet{
		Probe:      b[2]&pfBit != 0,
		ProbeReply: b[2]&prBit != 0,
	}
	b = b[4:]
	for len(b) > 0 {
		if len(b) < 4 {
			return nil, fmt.Errorf("etherbone: truncated record")
		}
		var r Record
		wcount, rcount := int(b[2]), int(b[3])
		b = b[4:]
		if wcount > 0 {
			if len(b) < 4*(wcount+1) {
				return nil, fmt.Errorf("etherbone: truncated writes")
			}
			r.WriteBase = binary.BigEndian.Uint32(b)
			b = b[4:]
			for i := 0; i < wcount; i++ {
				r.Values = append(r.Values, binary.BigEndian.Uint32(b))
				b = b[4:]
			}
		}
		if rcount > 0 {
			if len(b) < 4*(rcount+1) {
				return nil, fmt.Errorf("etherbone: truncated reads")
			}
			r.ReadBase = binary.BigEndian.Uint32(b)
			b = b[4:]
			for i := 0; i < rcount; i++ {
				r.Addrs = append(r.Addrs, binary.BigEndian.Uint32(b))
				b = b[4:]
			}
		}
		p.Records = append(p.Records, r)
	}
	return p, nil
}

func append32(b []byte, v uint32) []byte {
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
