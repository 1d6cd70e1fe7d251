// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package sensors

import (
	"fmt"

	"github.com/litexsoc/socdiag/sim"
)

func Example() {
	soc := sim.New()
	c := &Command{Bus: soc, Map: soc.Map()}
	if err := c.Main(); err != nil {
		fmt.Println("err:", err)
	}
	// Output:
	// temperature: 45.03 C
	// vccint: 0.95 V
	// vccaux: 1.80 V
	// vccbram: 0.95 V
}
