// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package diag

import (
	"fmt"

	"github.com/litexsoc/socdiag/target"
)

func diagNetwork() error {
	var r string

	host := target.Host(targetSpec)
	if len(host) == 0 {
		return fmt.Errorf("network: local target, nothing to ping")
	}

	diagHeader()

	/* diagTest: ICMP echo to the Etherbone host; the bridge already
	   answered the probe, so this isolates plain IP from the UDP path */
	result := diagPing(host, 3)
	r = CheckPassB(result, true)
	fmt.Printf("%15s|%25s|%10s|%10t|%10t|%10t|%6s|%35s\n", "network", "target_ping", "-", result, ping_response_min, ping_response_max, r, "ping the Etherbone host")
	return nil
}
