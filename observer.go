// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cardscope

import (
	"github.com/rs/zerolog"

	"cardscope/card"
)

// Observer is the logging seam. It receives the outcome of every
// classification the pipeline computes, and internal faults separately.
// Only the masked PAN ever crosses this interface; implementations must
// not attempt to recover the full number.
type Observer interface {
	// OnClassification fires after a classification is computed (cache
	// hits do not recompute and do not fire).
	OnClassification(maskedPAN string, valid bool, network string, reason card.FailureReason)

	// OnInternalFault fires when an unexpected fault was caught at the
	// pipeline boundary. maskedPAN may be empty when masking itself
	// could not be computed.
	OnInternalFault(err error, maskedPAN string)
}

// NopObserver is the default: it discards everything.
type NopObserver struct{}

func (NopObserver) OnClassification(string, bool, string, card.FailureReason) {}
func (NopObserver) OnInternalFault(error, string)                             {}

// ZerologObserver writes classification outcomes as structured log
// events.
type ZerologObserver struct {
	log zerolog.Logger
}

// NewZerologObserver wraps a zerolog logger as an Observer.
func NewZerologObserver(log zerolog.Logger) *ZerologObserver {
	return &ZerologObserver{log: log}
}

func (o *ZerologObserver) OnClassification(maskedPAN string, valid bool, network string, reason card.FailureReason) {
	evt := o.log.Info()
	if !valid {
		evt = o.log.Warn()
	}
	evt.
		Str("pan", maskedPAN).
		Bool("valid", valid).
		Str("network", network).
		Str("reason", reason.String()).
		Msg("card classified")
}

func (o *ZerologObserver) OnInternalFault(err error, maskedPAN string) {
	o.log.Error().
		Err(err).
		Str("pan", maskedPAN).
		Msg("card classification fault")
}
