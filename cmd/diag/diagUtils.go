// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package diag

import (
	"fmt"
	"net"
	"time"

	"github.com/tatsushid/go-fastping"
)

func diagHeader() {
	fmt.Printf("\n%15s|%25s|%10s|%10s|%10s|%10s|%6s|%35s\n", "function", "parameter", "units", "value", "min", "max", "result", "description")
	fmt.Printf("---------------|-------------------------|----------|----------|----------|----------|------|-----------------------------------\n")
}

func diagPing(address string, count int) bool {
	result := false
	pinger := fastping.NewPinger()
	pinger.Size = 64
	da, err := net.ResolveIPAddr("ip4:icmp", address)
	if err != nil {
		if debug {
			fmt.Printf("cannot resolve %s: %v\n", address, err)
		}
		return false
	}
	pinger.AddIPAddr(da)
	pinger.OnRecv = func(addr *net.IPAddr, rtt time.Duration) {
		if debug {
			fmt.Printf("%d bytes from %s in %s\n", pinger.Size, addr.String(), rtt.String())
		}
		result = true
	}
	pinger.OnIdle = func() {}
	for i := 0; i < count; i++ {
		pinger.Run()
	}
	return result
}

// return true if test result r is within min and max limits
func CheckPassF(r float64, min float64, max float64) string {
	if r >= min && r <= max {
		return "pass"
	} else {
		return "fail"
	}
}
func CheckPassU(r uint64, min uint64, max uint64) string {
	if r >= min && r <= max {
		return "pass"
	} else {
		return "fail"
	}
}
func CheckPassB(r bool, state bool) string {
	if r == state {
		return "pass"
	} else {
		return "fail"
	}
}
