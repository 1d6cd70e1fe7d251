// Copyright © 2017-2020 The socdiag authors. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package mem maps the SoC's register window through /dev/mem for use on the
// target itself.
package mem

import (
	"fmt"
	"os"
	"sync/atomic"
	"syscall"
	"unsafe"
)

const DevMem = "/dev/mem"

// Bus is a csr.Bus over a mapped register window.
type Bus struct {
	f    *os.File
	page []byte
	base uint32
}

// Open maps size bytes at base. Both are rounded to the system page size.
func Open(fn string, base, size uint32) (*Bus, error) {
	pg := uint32(syscall.Getpagesize())
	lo := base &^ (pg - 1)
	hi := (base + size + pg - 1) &^ (pg - 1)
	f, err := os.OpenFile(fn, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, err
	}
	page, err := syscall.Mmap(int(f.Fd()), int64(lo), int(hi-lo),
		syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: mmap: %v", fn, err)
	}
	return &Bus{f: f, page: page, base: lo}, nil
}

func (b *Bus) Close() error {
	err := syscall.Munmap(b.page)
	if terr := b.f.Close(); err == nil {
		err = terr
	}
	return err
}

func (b *Bus) Read32(addr uint32) (uint32, error) {
	p, err := b.word(addr)
	if err != nil {
		return 0, err
	}
	return atomic.LoadUint32(p), nil
}

func (b *Bus) Write32(addr, value uint32) error {
	p, err := b.word(addr)
	if err != nil {
		return err
	}
	atomic.StoreUint32(p, value)
	return nil
}

func (b *Bus) word(addr uint32) (*uint32, error) {
	if addr&3 != 0 {
		return nil, fmt.Errorf("%#x: unaligned", addr)
	}
	off := addr - b.base
	if addr < b.base || int(off)+4 > len(b.page) {
		return nil, fmt.Errorf("%#x: outside mapped window", addr)
	}
	return (*uint32)(unsafe.Pointer(&b.page[off])), nil
}
