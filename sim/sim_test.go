// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package sim_test

import (
	"testing"

	"github.com/litexsoc/socdiag/dev/dna"
	"github.com/litexsoc/socdiag/dev/timer"
	"github.com/litexsoc/socdiag/sim"
)

func TestScratch(t *testing.T) {
	soc := sim.New()
	r, err := soc.Map().Reg("ctrl_scratch")
	if err != nil {
		t.Fatal(err)
	}
	if err = r.Write(soc, 0xdeadbeef); err != nil {
		t.Fatal(err)
	}
	v, err := r.Read(soc)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0xdeadbeef {
		t.Errorf("got %#x, want 0xdeadbeef", v)
	}
}

func TestDna(t *testing.T) {
	soc := sim.New()
	v, err := dna.Read(soc, soc.Map())
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x0000cafe2badf00d {
		t.Errorf("got %#x", v)
	}
}

func TestTimer(t *testing.T) {
	soc := sim.New()
	soc.Elapsed = 12345
	tmr, err := timer.New(soc, soc.Map())
	if err != nil {
		t.Fatal(err)
	}
	if err = tmr.Arm(); err != nil {
		t.Fatal(err)
	}
	ticks, err := tmr.Elapsed()
	if err != nil {
		t.Fatal(err)
	}
	if ticks != 12345 {
		t.Errorf("got %d ticks, want 12345", ticks)
	}
}

func TestDoneCountdown(t *testing.T) {
	soc := sim.New()
	soc.DoneAfter = 3
	done, err := soc.Map().Reg("generator_done")
	if err != nil {
		t.Fatal(err)
	}
	shoot, err := soc.Map().Reg("generator_shoot")
	if err != nil {
		t.Fatal(err)
	}

	// unarmed cores are never done
	if v, _ := done.Read(soc); v != 0 {
		t.Error("done asserted before shoot")
	}

	if err = shoot.Write(soc, 1); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if v, _ := done.Read(soc); v != 0 {
			t.Fatalf("done asserted after %d polls", i+1)
		}
	}
	if v, _ := done.Read(soc); v != 1 {
		t.Error("done never asserted")
	}
}

func TestAccessLog(t *testing.T) {
	soc := sim.New()
	r, err := soc.Map().Reg("leds_out")
	if err != nil {
		t.Fatal(err)
	}
	if err = r.Write(soc, 0xf); err != nil {
		t.Fatal(err)
	}
	if _, err = r.Read(soc); err != nil {
		t.Fatal(err)
	}
	log := soc.Log()
	if len(log) != 2 {
		t.Fatalf("got %d accesses, want 2", len(log))
	}
	if !log[0].Write || log[0].Name != "leds_out" || log[0].Value != 0xf {
		t.Error("unexpected write record:", log[0])
	}
	if log[1].Write || log[1].Name != "leds_out" {
		t.Error("unexpected read record:", log[1])
	}
	if n := soc.Reads("leds_out"); n != 1 {
		t.Errorf("got %d reads, want 1", n)
	}
}
