// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package diag

import (
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/litexsoc/socdiag/sim"
)

func capture(t *testing.T, f func() error) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	save := os.Stdout
	os.Stdout = w
	ferr := f()
	w.Close()
	os.Stdout = save
	b, err := ioutil.ReadAll(r)
	r.Close()
	if err != nil {
		t.Fatal(err)
	}
	if ferr != nil {
		t.Fatal(ferr)
	}
	return string(b)
}

func TestSensors(t *testing.T) {
	soc := sim.New()
	bus, regmap = soc, soc.Map()
	out := capture(t, diagSensors)
	for _, want := range []string{
		"temperature",
		"vccint",
		"vccaux",
		"vccbram",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("no %s row in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "fail") {
		t.Errorf("unexpected fail in:\n%s", out)
	}
}

func TestDna(t *testing.T) {
	soc := sim.New()
	bus, regmap = soc, soc.Map()
	out := capture(t, diagDna)
	if !strings.Contains(out, "0xcafe2badf00d") {
		t.Errorf("no DNA value in:\n%s", out)
	}
	if strings.Contains(out, "fail") {
		t.Errorf("unexpected fail in:\n%s", out)
	}
}

func TestBist(t *testing.T) {
	soc := sim.New()
	soc.Elapsed = 1000000
	bus, regmap = soc, soc.Map()
	out := capture(t, diagBist)
	for _, want := range []string{
		"write_mbps",
		"read_mbps",
		"errors",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("no %s row in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "fail") {
		t.Errorf("unexpected fail in:\n%s", out)
	}
}

func TestBistErrors(t *testing.T) {
	soc := sim.New()
	soc.Elapsed = 1000000
	soc.Errors = 7
	bus, regmap = soc, soc.Map()
	out := capture(t, diagBist)
	if !strings.Contains(out, "fail") {
		t.Errorf("no fail verdict with mismatches in:\n%s", out)
	}
}

func TestUnknown(t *testing.T) {
	soc := sim.New()
	c := &Command{Bus: soc, Map: soc.Map()}
	err := c.Main("bogus")
	if err == nil || !strings.Contains(err.Error(), "unknown") {
		t.Errorf("got %v, want unknown test error", err)
	}
}

func TestCheckPass(t *testing.T) {
	if r := CheckPassF(45.0, temp_min, temp_max); r != "pass" {
		t.Error("in-range temperature:", r)
	}
	if r := CheckPassF(105.0, temp_min, temp_max); r != "fail" {
		t.Error("out-of-range temperature:", r)
	}
	if r := CheckPassU(0, bist_errors_min, bist_errors_max); r != "pass" {
		t.Error("zero errors:", r)
	}
	if r := CheckPassU(1, bist_errors_min, bist_errors_max); r != "fail" {
		t.Error("one error:", r)
	}
	if r := CheckPassB(true, true); r != "pass" {
		t.Error("matched state:", r)
	}
	if r := CheckPassB(false, true); r != "fail" {
		t.Error("mismatched state:", r)
	}
}
