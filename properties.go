package cliopt

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Properties is an insertion-ordered map of option keys to fallback values,
// applied after the token scan for options the arguments did not supply.
// Order is part of the contract: the defaulting pass stops at the first
// no-value option whose default is not an affirmative string, skipping every
// later key.
type Properties struct {
	m *orderedmap.OrderedMap[string, string]
}

func NewProperties() *Properties {
	return &Properties{m: orderedmap.New[string, string]()}
}

// Set stores the fallback value for an option key, keeping the key's original
// position if it was already present. Returns the receiver for chaining.
func (p *Properties) Set(key, value string) *Properties {
	p.m.Set(key, value)
	return p
}

func (p *Properties) Get(key string) (string, bool) {
	return p.m.Get(key)
}

func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return p.m.Len()
}

// Each calls visit for every key in insertion order until visit returns
// false. A nil receiver is an empty map.
func (p *Properties) Each(visit func(key, value string) bool) {
	if p == nil {
		return
	}
	for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
		if !visit(pair.Key, pair.Value) {
			return
		}
	}
}
