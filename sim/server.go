// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package sim

import (
	"net"

	"github.com/litexsoc/socdiag/eb"
	"github.com/platinasystems/log"
)

// ListenAndServe answers Etherbone on the given UDP address until the
// listener fails.
func ListenAndServe(addr string, soc *SoC) error {
	conn, err := net.ListenPacket("udp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()
	return Serve(conn, soc)
}

// Serve answers Etherbone datagrams from conn against soc. It returns when
// conn is closed.
func Serve(conn net.PacketConn, soc *SoC) error {
	buf := make([]byte, eb.MTU)
	for {
		n, peer, err := conn.ReadFrom(buf)
		if err != nil {
			return err
		}
		p, err := eb.Decode(buf[:n])
		if err != nil {
			log.Print("err", "sim", err)
			continue
		}
		if reply := handle(p, soc); reply != nil {
			if _, err = conn.WriteTo(reply.Encode(), peer); err != nil {
				return err
			}
		}
	}
}

func handle(p *eb.Packet, soc *SoC) *eb.Packet {
	if p.Probe {
		return &eb.Packet{ProbeReply: true}
	}
	var out []eb.Record
	for _, r := range p.Records {
		for i, v := range r.Values {
			soc.Write32(r.WriteBase+uint32(4*i), v)
		}
		if len(r.Addrs) > 0 {
			values := make([]uint32, len(r.Addrs))
			for i, a := range r.Addrs {
				values[i], _ = soc.Read32(a)
			}
			out = append(out, eb.Record{
				WriteBase: r.ReadBase,
				Values:    values,
			})
		}
	}
	if len(out) == 0 {
		return nil
	}
	return &eb.Packet{Records: out}
}
