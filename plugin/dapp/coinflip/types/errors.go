// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// validation
var (
	ErrAssetNotWhitelisted    = errors.New("ErrAssetNotWhitelisted")
	ErrInvalidStake           = errors.New("ErrInvalidStake")
	ErrInvalidSide            = errors.New("ErrInvalidSide")
	ErrWrongValue             = errors.New("ErrWrongValue")
	ErrUnexpectedValue        = errors.New("ErrUnexpectedValue")
	ErrTransferAmountMismatch = errors.New("ErrTransferAmountMismatch")
	ErrInvalidCommitment      = errors.New("ErrInvalidCommitment")
	ErrInvalidReveal          = errors.New("ErrInvalidReveal")
	ErrFeeAmount              = errors.New("ErrFeeAmount")
	ErrInvalidVersion         = errors.New("ErrInvalidVersion")
	ErrDailyLimit             = errors.New("ErrDailyLimit")
	ErrConfig                 = errors.New("ErrConfig")
)

// state guard
var (
	ErrGameNotFound = errors.New("ErrGameNotFound")
	ErrGameStatus   = errors.New("ErrGameStatus")
	ErrSelfJoin     = errors.New("ErrSelfJoin")
	ErrJoinExpired  = errors.New("ErrJoinExpired")
	ErrPaused       = errors.New("ErrPaused")
	ErrReentrant    = errors.New("ErrReentrant")
)

// authorization
var (
	ErrNotOwner   = errors.New("ErrNotOwner")
	ErrNotSigner  = errors.New("ErrNotSigner")
	ErrNotCreator = errors.New("ErrNotCreator")
)

// timing
var (
	ErrTimelockNotReady      = errors.New("ErrTimelockNotReady")
	ErrTargetBlockNotReached = errors.New("ErrTargetBlockNotReached")
	ErrResolveExpired        = errors.New("ErrResolveExpired")
	ErrRefundNotReady        = errors.New("ErrRefundNotReady")
)

// entropy integrity
var (
	ErrNoCommitment    = errors.New("ErrNoCommitment")
	ErrRevealMismatch  = errors.New("ErrRevealMismatch")
	ErrEpochInPast     = errors.New("ErrEpochInPast")
	ErrEpochCommitted  = errors.New("ErrEpochCommitted")
)

// payment
var (
	ErrZeroBalance = errors.New("ErrZeroBalance")
)
