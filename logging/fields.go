package logging

import (
	"encoding/hex"
	"time"

	"code.witanprotocol.io/witan/types"
	"code.witanprotocol.io/witan/types/num"

	"go.uber.org/zap"
)

// String constructs a field with the given key and value.
func String(key, val string) zap.Field {
	return zap.String(key, val)
}

// Strings constructs a field with the given key and slice of values.
func Strings(key string, val []string) zap.Field {
	return zap.Strings(key, val)
}

// Int constructs a field with the given key and value.
func Int(key string, val int) zap.Field {
	return zap.Int(key, val)
}

// Int64 constructs a field with the given key and value.
func Int64(key string, val int64) zap.Field {
	return zap.Int64(key, val)
}

// Uint64 constructs a field with the given key and value.
func Uint64(key string, val uint64) zap.Field {
	return zap.Uint64(key, val)
}

// Float64 constructs a field with the given key and value.
func Float64(key string, val float64) zap.Field {
	return zap.Float64(key, val)
}

// Bool constructs a field with the given key and value.
func Bool(key string, val bool) zap.Field {
	return zap.Bool(key, val)
}

// Duration constructs a field with the given key and value.
func Duration(key string, val time.Duration) zap.Field {
	return zap.Duration(key, val)
}

// Time constructs a field with the given key and value.
func Time(key string, val time.Time) zap.Field {
	return zap.Time(key, val)
}

// Error constructs a field that carries an error.
func Error(err error) zap.Field {
	return zap.Error(err)
}

// Hash constructs a field holding a hex encoded hash.
func Hash(key string, val []byte) zap.Field {
	return zap.String(key, hex.EncodeToString(val))
}

// BigUint constructs a field holding a 256-bit amount.
func BigUint(key string, val *num.Uint) zap.Field {
	if val == nil {
		return zap.String(key, "nil")
	}
	return zap.String(key, val.String())
}

// Proposal constructs a field holding the salient identity of a proposal.
func Proposal(p *types.Proposal) zap.Field {
	if p == nil {
		return zap.String("proposal", "nil")
	}
	return zap.String("proposal", p.String())
}

// Vote constructs a field holding the salient identity of a vote.
func Vote(v *types.Vote) zap.Field {
	if v == nil {
		return zap.String("vote", "nil")
	}
	return zap.String("vote", v.String())
}

// PartyID constructs a field with the given party identity.
func PartyID(id string) zap.Field {
	return zap.String("party", id)
}

// ProposalID constructs a field with the given proposal id.
func ProposalID(id uint64) zap.Field {
	return zap.Uint64("proposal-id", id)
}
