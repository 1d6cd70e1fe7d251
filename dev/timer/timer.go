// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package timer measures elapsed system clock ticks with the SoC's countdown
// timer.
package timer

import "github.com/litexsoc/socdiag/csr"

// Load is the countdown starting value; elapsed ticks are Load minus the
// snapshot.
const Load = 0xffffffff

type Timer struct {
	bus         csr.Bus
	en          *csr.Register
	load        *csr.Register
	updateValue *csr.Register
	value       *csr.Register
}

func New(b csr.Bus, m *csr.Map) (*Timer, error) {
	t := &Timer{bus: b}
	for _, reg := range []struct {
		p    **csr.Register
		name string
	}{
		{&t.en, "timer0_en"},
		{&t.load, "timer0_load"},
		{&t.updateValue, "timer0_update_value"},
		{&t.value, "timer0_value"},
	} {
		var err error
		if *reg.p, err = m.Reg(reg.name); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Arm restarts the countdown from Load.
func (t *Timer) Arm() error {
	if err := t.en.Write(t.bus, 0); err != nil {
		return err
	}
	if err := t.load.Write(t.bus, Load); err != nil {
		return err
	}
	return t.en.Write(t.bus, 1)
}

// Elapsed latches the running value and returns the ticks burned since Arm.
func (t *Timer) Elapsed() (uint32, error) {
	if err := t.updateValue.Write(t.bus, 1); err != nil {
		return 0, err
	}
	v, err := t.value.Read(t.bus)
	if err != nil {
		return 0, err
	}
	return Load - uint32(v), nil
}
