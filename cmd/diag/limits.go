// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package diag

const temp_min, temp_max = 10.0, 85.0
const vccint_min, vccint_max = 0.92, 0.98
const vccaux_min, vccaux_max = 1.71, 1.89
const vccbram_min, vccbram_max = 0.92, 0.98
const bist_mbps_min, bist_mbps_max = 1000, 1000000
const bist_errors_min, bist_errors_max = 0, 0
const dna_present_min, dna_present_max = true, true
const leds_readback_min, leds_readback_max = true, true
const ping_response_min, ping_response_max = true, true
