// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package diag

import (
	"fmt"

	"github.com/litexsoc/socdiag/dev/dna"
)

func diagDna() error {
	var r string

	if !regmap.Has("dna") {
		return fmt.Errorf("dna: no such core in this build")
	}
	d, err := dna.Read(bus, regmap)
	if err != nil {
		return err
	}

	diagHeader()

	/* diagTest: device DNA, an all-zero id means the shift chain never
	   ran */
	result := d != 0
	r = CheckPassB(result, true)
	fmt.Printf("%15s|%25s|%10s|%#10x|%10t|%10t|%6s|%35s\n", "dna", "id", "-", d, dna_present_min, dna_present_max, r, "check device DNA is programmed")
	return nil
}
