// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package bist

import (
	"fmt"
	"strconv"

	"github.com/litexsoc/socdiag/csr"
	"github.com/litexsoc/socdiag/dev/dram"
	"github.com/litexsoc/socdiag/dev/timer"
	"github.com/litexsoc/socdiag/lang"
	"github.com/litexsoc/socdiag/target"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/parms"
	"github.com/platinasystems/redis"
)

// TestSize is the exercised SDRAM range in bytes, from main_ram base 0 up.
const TestSize = 64 * 1024 * 1024

// Command is the SDRAM throughput self-test: stream TestSize bytes through
// the generator, stream them back through the checker, time both runs with
// the countdown timer, and report the checker's error count.
type Command struct {
	// Bus and Map, when set, bypass target dialing.
	Bus csr.Bus
	Map *csr.Map
}

type core interface {
	Reset() error
	Program(base, nbytes uint32) error
	Shoot() error
	Wait() error
}

func (*Command) String() string { return "bist" }

func (*Command) Usage() string {
	return "bist [-t TARGET] [-csr FILE] [-pub]"
}

func (*Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "SDRAM traffic generator/checker self-test",
	}
}

func (*Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Exercises 64 Mbytes of SDRAM through the traffic generator and
	checker cores and reports the achieved write and read bandwidth plus
	the checker's error count. Requires a gateware build with the
	generator core; see "csr" for the build's register map.

	Each phase resets its core, programs the address range, restarts the
	countdown timer and triggers the run, then spins on the core's done
	flag. There is no timeout: a wedged core hangs the test.

OPTIONS
	-t TARGET
		SoC to test; see the man page of "csr". Defaults to the
		SOCDIAG_TARGET environment variable.
	-csr FILE
		register map of the build; default ./csr.csv or SOCDIAG_CSR.
	-pub	publish results to the local redis server`,
	}
}

func (c *Command) Main(args ...string) error {
	flag, args := flags.New(args, "-pub")
	parm, args := parms.New(args, "-t", "-csr")
	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected", args)
	}

	bus, m := c.Bus, c.Map
	if bus == nil {
		var err error
		bus, m, err = target.Open(parm)
		if err != nil {
			return err
		}
		defer bus.Close()
	}
	if !m.Has("generator") {
		return fmt.Errorf("generator: no such core in this build")
	}
	clk, err := m.ClockFrequency()
	if err != nil {
		return err
	}

	gen, err := dram.NewGenerator(bus, m)
	if err != nil {
		return err
	}
	chk, err := dram.NewChecker(bus, m)
	if err != nil {
		return err
	}
	tmr, err := timer.New(bus, m)
	if err != nil {
		return err
	}

	wmbps, err := phase("writing", gen, tmr, clk)
	if err != nil {
		return err
	}
	rmbps, err := phase("reading", chk, tmr, clk)
	if err != nil {
		return err
	}
	errors, err := chk.ErrorCount()
	if err != nil {
		return err
	}
	fmt.Printf("errors: %d\n", errors)

	if flag.ByName["-pub"] {
		for _, x := range []struct {
			field string
			value uint64
		}{
			{"bist.write.mbps", wmbps},
			{"bist.read.mbps", rmbps},
			{"bist.errors", uint64(errors)},
		} {
			_, err = redis.Hset(redis.DefaultHash, x.field,
				strconv.FormatUint(x.value, 10))
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// phase runs one timed pass: reset, program, arm timer, shoot, spin on done,
// then convert elapsed ticks to Mbps.
func phase(verb string, c core, tmr *timer.Timer, clk uint32) (uint64, error) {
	fmt.Printf("%s %d Mbytes...", verb, TestSize/(1024*1024))
	if err := c.Reset(); err != nil {
		return 0, err
	}
	if err := c.Program(0, TestSize); err != nil {
		return 0, err
	}
	if err := tmr.Arm(); err != nil {
		return 0, err
	}
	if err := c.Shoot(); err != nil {
		return 0, err
	}
	if err := c.Wait(); err != nil {
		return 0, err
	}
	ticks, err := tmr.Elapsed()
	if err != nil {
		return 0, err
	}
	mbps, err := dram.Mbps(TestSize, ticks, clk)
	if err != nil {
		return 0, err
	}
	fmt.Printf("/ %d Mbps\n", mbps)
	return mbps, nil
}
