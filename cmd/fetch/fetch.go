// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package fetch

import (
	"fmt"
	"os"
	"time"

	"github.com/cavaliercoder/grab"
	"github.com/litexsoc/socdiag/lang"
)

type Command struct{}

func (Command) String() string { return "fetch" }

func (Command) Usage() string { return "fetch URL..." }

func (Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "download build artifacts",
	}
}

func (Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Downloads the named files into the working directory, typically a
	build's bitstream and csr.csv from the gateware build server.`,
	}
}

func (Command) Main(args ...string) error {
	if len(args) < 1 {
		return fmt.Errorf("URL: missing")
	}

	client := grab.NewClient()
	client.UserAgent = "socdiag"

	reqs := make([]*grab.Request, 0)
	for _, u := range args {
		req, err := grab.NewRequest(u)
		if err != nil {
			return err
		}
		reqs = append(reqs, req)
	}

	// start file downloads, 3 at a time
	respch := client.DoBatch(3, reqs...)

	t := time.NewTicker(200 * time.Millisecond)
	defer t.Stop()

	completed := 0
	successes := 0
	responses := make([]*grab.Response, 0)
	for completed < len(reqs) {
		select {
		case resp := <-respch:
			// nil is received once, when grab closes the channel
			if resp != nil {
				responses = append(responses, resp)
			}
		case <-t.C:
			for i, resp := range responses {
				if resp == nil || !resp.IsComplete() {
					continue
				}
				if resp.Error != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n",
						resp.Request.URL(), resp.Error)
				} else {
					fmt.Printf("%s saved [%d bytes]\n",
						resp.Filename,
						resp.BytesTransferred())
					successes++
				}
				responses[i] = nil
				completed++
			}
		}
	}

	if successes == 0 {
		return fmt.Errorf("no files downloaded")
	}
	fmt.Printf("%d files successfully downloaded.\n", successes)
	return nil
}
