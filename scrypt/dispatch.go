// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/parscrypt/parscrypt/jobqueue"
)

// Deriver computes scrypt keys, running the p mixing units of a derivation
// as separate jobs on a Scheduler. The zero value uses Salsa on
// jobqueue.Default(). A Deriver must not be modified while in use.
type Deriver struct {
	// Scheduler runs the mixing units. Nil means jobqueue.Default().
	Scheduler jobqueue.Scheduler
	// Core provides the scrypt primitives. Nil means Salsa.
	Core Core
	// LockMemory pins the working buffer and every unit's scratch memory
	// in RAM while they hold secret-derived data.
	LockMemory bool
}

func (d *Deriver) core() Core {
	if d.Core == nil {
		return Salsa
	}
	return d.Core
}

func (d *Deriver) scheduler() jobqueue.Scheduler {
	if d.Scheduler == nil {
		return jobqueue.Default()
	}
	return d.Scheduler
}

// Key derives a keyLen-byte key from password and salt. The p mixing units
// are submitted with the given priority, lower values running first when
// the scheduler is busy. The result does not depend on the scheduler or the
// priority.
//
// Key returns only after every submitted unit has finished. If any unit
// fails, the failure of the lowest segment index is returned and no key is
// produced.
func (d *Deriver) Key(params Params, password, salt []byte, keyLen, priority int) ([]byte, error) {
	if !params.valid() {
		return nil, errors.Wrap(ErrInvalidParameter, "zero Params")
	}
	if keyLen <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "key length %d must be > 0", keyLen)
	}

	logger := log.WithFields(logrus.Fields{
		"N":        params.n,
		"r":        params.r,
		"p":        params.p,
		"keyLen":   keyLen,
		"priority": priority,
	})
	logger.Debug("Starting derivation")

	core := d.core()
	buf, err := NewBuffer(core.InitialStretch(password, salt, params.BufferLen()), params)
	if err != nil {
		return nil, errors.WithMessage(err, "initial stretch")
	}
	if d.LockMemory {
		defer lockRegions(buf.Bytes())()
	}
	defer buf.Wipe()

	if err := d.mix(buf, core, priority); err != nil {
		logger.WithError(err).Debug("Derivation failed")
		return nil, err
	}

	key := core.FinalStretch(password, buf.Bytes(), keyLen)
	logger.Debug("Finished derivation")
	return key, nil
}

// KeyUnsalted is Key with an empty salt.
func (d *Deriver) KeyUnsalted(params Params, password []byte, keyLen, priority int) ([]byte, error) {
	return d.Key(params, password, nil, keyLen, priority)
}

// mix runs one unit per segment and waits for all of them.
func (d *Deriver) mix(buf *Buffer, core Core, priority int) error {
	segs := buf.Partition()
	if len(segs) == 1 {
		return d.newUnit(0, segs[0], buf.params, core).run()
	}

	sched := d.scheduler()
	handles := make([]jobqueue.Handle, 0, len(segs))
	var submitErr error
	for i, seg := range segs {
		h, err := sched.Submit(d.newUnit(i, seg, buf.params, core).run, priority)
		if err != nil {
			submitErr = fmt.Errorf("%w: submit segment %d: %w", ErrSchedulerFailure, i, err)
			break
		}
		handles = append(handles, h)
	}

	// Every submitted unit still references the buffer, so all of them are
	// awaited before reporting anything.
	var first error
	for i, h := range handles {
		if err := h.Await(); err != nil && first == nil {
			first = awaitError(i, err)
		}
	}
	if first != nil {
		return first
	}
	return submitErr
}

func awaitError(i int, err error) error {
	var ue *UnitError
	if errors.As(err, &ue) {
		return ue
	}
	return fmt.Errorf("%w: await segment %d: %w", ErrSchedulerFailure, i, err)
}

// unit is the argument set of one mixing job. It shares nothing mutable
// with the other units of a derivation.
type unit struct {
	index  int
	seg    Segment
	params Params
	core   Core
	lock   bool
}

func (d *Deriver) newUnit(i int, seg Segment, params Params, core Core) unit {
	return unit{index: i, seg: seg, params: params, core: core, lock: d.LockMemory}
}

func (u unit) run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &UnitError{Segment: u.index, Err: errors.Errorf("panic: %v", r)}
		}
		if err != nil {
			log.WithField("segment", u.index).WithError(err).Debug("Mixing unit failed")
		}
	}()

	s := NewScratch(u.params)
	if u.lock {
		defer lockRegions(s.regions()...)()
	}
	defer s.Wipe()

	if err := u.core.Mix(u.seg, s, u.params); err != nil {
		return &UnitError{Segment: u.index, Err: err}
	}
	return nil
}
