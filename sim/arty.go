// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package sim

import (
	"strings"

	"github.com/litexsoc/socdiag/csr"
)

// Arty returns the register map of the Arty bridge build, as its gateware
// builder writes it to csr.csv.
func Arty() *csr.Map {
	m, err := csr.Load(strings.NewReader(ArtyCSV))
	if err != nil {
		panic(err)
	}
	return m
}

// ArtyCSV is the model's register map in the gateware builder's csr.csv
// format.
const ArtyCSV = `csr_base,ctrl,0xe0000000
csr_base,uart,0xe0000800
csr_base,timer0,0xe0001800
csr_base,spiflash,0xe0008000
csr_base,ddrphy,0xe0008800
csr_base,dna,0xe0009000
csr_base,xadc,0xe0009800
csr_base,leds,0xe000a000
csr_base,rgb_leds,0xe000a800
csr_base,generator,0xe000b000
csr_base,checker,0xe000b800
csr_register,ctrl_reset,0xe0000000,1,rw
csr_register,ctrl_scratch,0xe0000004,1,rw
csr_register,ctrl_bus_errors,0xe0000008,1,ro
csr_register,uart_rxtx,0xe0000800,1,rw
csr_register,uart_txfull,0xe0000804,1,ro
csr_register,uart_rxempty,0xe0000808,1,ro
csr_register,timer0_load,0xe0001800,1,rw
csr_register,timer0_reload,0xe0001804,1,rw
csr_register,timer0_en,0xe0001808,1,rw
csr_register,timer0_update_value,0xe000180c,1,rw
csr_register,timer0_value,0xe0001810,1,ro
csr_register,timer0_ev_status,0xe0001814,1,ro
csr_register,timer0_ev_pending,0xe0001818,1,rw
csr_register,timer0_ev_enable,0xe000181c,1,rw
csr_register,dna_id,0xe0009000,2,ro
csr_register,xadc_temperature,0xe0009800,1,ro
csr_register,xadc_vccint,0xe0009804,1,ro
csr_register,xadc_vccaux,0xe0009808,1,ro
csr_register,xadc_vccbram,0xe000980c,1,ro
csr_register,leds_out,0xe000a000,1,rw
csr_register,generator_reset,0xe000b000,1,rw
csr_register,generator_base,0xe000b004,1,rw
csr_register,generator_length,0xe000b008,1,rw
csr_register,generator_shoot,0xe000b00c,1,rw
csr_register,generator_done,0xe000b010,1,ro
csr_register,checker_reset,0xe000b800,1,rw
csr_register,checker_base,0xe000b804,1,rw
csr_register,checker_length,0xe000b808,1,rw
csr_register,checker_shoot,0xe000b80c,1,rw
csr_register,checker_done,0xe000b810,1,ro
csr_register,checker_error_count,0xe000b814,1,ro
constant,csr_data_width,32
constant,system_clock_frequency,100000000
memory_region,rom,0x00000000,0x8000
memory_region,sram,0x10000000,0x8000
memory_region,spiflash,0x20000000,0x1000000
memory_region,main_ram,0x40000000,0x10000000
`
