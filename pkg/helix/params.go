package helix

import (
	"strconv"
	"strings"
)

// Params is an ordered multimap of query parameters. Keys serialize in
// insertion order and repeated values serialize in the order they were
// added, so a built URL is reproducible for a given construction sequence.
type Params struct {
	pairs []paramPair
}

type paramPair struct {
	key    string
	values []string
}

// NewParams creates an empty parameter set.
func NewParams() *Params {
	return &Params{}
}

// Set replaces all values for key, keeping the key's original position if it
// already exists.
func (p *Params) Set(key string, values ...string) *Params {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			p.pairs[i].values = values

			return p
		}
	}

	p.pairs = append(p.pairs, paramPair{key: key, values: values})

	return p
}

// SetInt replaces all values for key with a single integer value.
func (p *Params) SetInt(key string, value int) *Params {
	return p.Set(key, strconv.Itoa(value))
}

// Add appends values for key. If the key is new it is placed at the end.
func (p *Params) Add(key string, values ...string) *Params {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			p.pairs[i].values = append(p.pairs[i].values, values...)

			return p
		}
	}

	p.pairs = append(p.pairs, paramPair{key: key, values: values})

	return p
}

// Values returns the values stored for key, or nil when the key is absent.
func (p *Params) Values(key string) []string {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			return p.pairs[i].values
		}
	}

	return nil
}

// Len returns the number of distinct keys.
func (p *Params) Len() int {
	return len(p.pairs)
}

// Clone returns a deep copy. Cloning a nil receiver yields an empty set,
// which lets the query pipeline augment parameters without mutating the
// caller's copy.
func (p *Params) Clone() *Params {
	clone := NewParams()
	if p == nil {
		return clone
	}

	clone.pairs = make([]paramPair, len(p.pairs))
	for i, pair := range p.pairs {
		clone.pairs[i] = paramPair{
			key:    pair.key,
			values: append([]string(nil), pair.values...),
		}
	}

	return clone
}

// BuildURL appends params to basePath as a query string. Each value emits
// its own key=value pair (repeated-key encoding, the form Helix expects for
// multi-valued filters). The separator is "?" when the accumulated URL has
// no query component yet and "&" afterwards, re-evaluated on every append.
//
// Values are inserted as given: no percent-encoding is applied, so callers
// must pre-encode values containing reserved URL characters.
func BuildURL(basePath string, params *Params) string {
	url := basePath
	if params == nil {
		return url
	}

	for _, pair := range params.pairs {
		for _, value := range pair.values {
			separator := "?"
			if strings.Contains(url, "?") {
				separator = "&"
			}

			url += separator + pair.key + "=" + value
		}
	}

	return url
}
