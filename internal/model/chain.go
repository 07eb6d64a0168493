// Package model defines the chain identifiers and block records shared by
// the importer, calculator and repository.
package model

import (
	"fmt"
	"time"
)

// Chain identifies one tracked blockchain network.
type Chain string

const (
	Ethereum  Chain = "ethereum"
	Polygon   Chain = "polygon"
	Avalanche Chain = "avalanche"
	Solana    Chain = "solana"
	Bitcoin   Chain = "bitcoin"
)

// Family is the protocol family a chain speaks; it selects the client
// implementation.
type Family string

const (
	FamilyEVM     Family = "evm"
	FamilySolana  Family = "solana"
	FamilyBitcoin Family = "bitcoin"
)

// AllChains lists every chain the service tracks, in gather order.
func AllChains() []Chain {
	return []Chain{Ethereum, Polygon, Avalanche, Solana, Bitcoin}
}

// ParseChain validates a chain name from configuration.
func ParseChain(s string) (Chain, error) {
	c := Chain(s)
	switch c {
	case Ethereum, Polygon, Avalanche, Solana, Bitcoin:
		return c, nil
	}
	return "", fmt.Errorf("unknown chain %q", s)
}

// Family returns the protocol family for the chain.
func (c Chain) Family() Family {
	switch c {
	case Solana:
		return FamilySolana
	case Bitcoin:
		return FamilyBitcoin
	default:
		return FamilyEVM
	}
}

// RescanDelay is the base pause between import passes for the chain.
// Slow-block chains are rescanned less often.
func (c Chain) RescanDelay() time.Duration {
	switch c {
	case Ethereum, Bitcoin:
		return 60 * time.Second
	default:
		return 10 * time.Second
	}
}
