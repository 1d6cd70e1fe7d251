// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package diag

import (
	"fmt"

	"github.com/litexsoc/socdiag/dev/dram"
	"github.com/litexsoc/socdiag/dev/timer"
)

// bistSize keeps the diag pass short; the standalone bist command covers the
// full 64 Mbyte range.
const bistSize = 8 * 1024 * 1024

func diagBist() error {
	var r string

	if !regmap.Has("generator") {
		return fmt.Errorf("generator: no such core in this build")
	}
	clk, err := regmap.ClockFrequency()
	if err != nil {
		return err
	}
	gen, err := dram.NewGenerator(bus, regmap)
	if err != nil {
		return err
	}
	chk, err := dram.NewChecker(bus, regmap)
	if err != nil {
		return err
	}
	tmr, err := timer.New(bus, regmap)
	if err != nil {
		return err
	}

	diagHeader()

	/* diagTest: SDRAM write and read bandwidth over a short range */
	for _, phase := range []struct {
		name string
		core interface {
			Reset() error
			Program(base, nbytes uint32) error
			Shoot() error
			Wait() error
		}
	}{
		{"write_mbps", gen},
		{"read_mbps", chk},
	} {
		if err = phase.core.Reset(); err != nil {
			return err
		}
		if err = phase.core.Program(0, bistSize); err != nil {
			return err
		}
		if err = tmr.Arm(); err != nil {
			return err
		}
		if err = phase.core.Shoot(); err != nil {
			return err
		}
		if err = phase.core.Wait(); err != nil {
			return err
		}
		ticks, err := tmr.Elapsed()
		if err != nil {
			return err
		}
		mbps, err := dram.Mbps(bistSize, ticks, clk)
		if err != nil {
			return err
		}
		r = CheckPassU(mbps, bist_mbps_min, bist_mbps_max)
		fmt.Printf("%15s|%25s|%10s|%10d|%10d|%10d|%6s|%35s\n", "sdram", phase.name, "Mbps", mbps, bist_mbps_min, bist_mbps_max, r, "check SDRAM bandwidth")
	}

	/* diagTest: checker mismatch count after the read pass */
	errors, err := chk.ErrorCount()
	if err != nil {
		return err
	}
	r = CheckPassU(uint64(errors), bist_errors_min, bist_errors_max)
	fmt.Printf("%15s|%25s|%10s|%10d|%10d|%10d|%6s|%35s\n", "sdram", "errors", "-", errors, bist_errors_min, bist_errors_max, r, "check SDRAM data integrity")
	return nil
}
